package loader

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/controlf/controlf-go/pkg/controlf/models"
)

// delimiterCandidates in tie-break preference order.
var delimiterCandidates = []rune{',', ';', '\t', '|'}

// readSample returns up to n leading non-empty lines of the file,
// with a UTF-8 BOM stripped from the first one.
func readSample(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrFileAccess, path, err)
	}
	defer f.Close()

	var sample []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() && len(sample) < n {
		line := sc.Text()
		if len(sample) == 0 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		sample = append(sample, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrFileAccess, path, err)
	}
	if len(sample) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", models.ErrDelimiterInference, path)
	}
	return sample, nil
}

// sniffDelimiter picks the candidate delimiter that yields the most
// consistent multi-column layout across the sample. Parsing is
// quote-aware, so a comma inside a quoted field does not vote for
// comma. Candidates that fail to produce more than one column on at
// least half the sampled lines are rejected.
func sniffDelimiter(sample []string) (rune, error) {
	best := rune(0)
	bestScore := 0
	for _, cand := range delimiterCandidates {
		score := delimiterScore(sample, cand)
		if score > bestScore {
			best, bestScore = cand, score
		}
	}
	if best == 0 {
		return 0, fmt.Errorf("%w: no candidate delimiter yields a consistent column count", models.ErrDelimiterInference)
	}
	return best, nil
}

// delimiterScore parses the whole sample with the candidate delimiter
// and returns how many records share the most common column count
// above one, or zero when fewer than half the lines split at all.
func delimiterScore(sample []string, delim rune) int {
	r := csv.NewReader(strings.NewReader(strings.Join(sample, "\n")))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	counts := make(map[int]int)
	records := 0
	multi := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0
		}
		records++
		counts[len(rec)]++
		if len(rec) > 1 {
			multi++
		}
	}
	if records == 0 || multi*2 < len(sample) {
		return 0
	}

	score := 0
	for n, c := range counts {
		if n > 1 && c > score {
			score = c
		}
	}
	return score
}

package controlf

import "github.com/controlf/controlf-go/pkg/controlf/models"

// Error kinds reported by the engine. Every operation fails with one
// of these, discriminated via errors.Is; the shell owns presentation.
var (
	// ErrFileAccess indicates the input file could not be opened or read.
	ErrFileAccess = models.ErrFileAccess
	// ErrUnsupportedFormat indicates the input is neither a recognized
	// workbook format nor parseable as delimited text.
	ErrUnsupportedFormat = models.ErrUnsupportedFormat
	// ErrDelimiterInference indicates no delimiter candidate produced a
	// consistent multi-column layout on the sampled lines.
	ErrDelimiterInference = models.ErrDelimiterInference
	// ErrSheetNotFound indicates the named sheet does not exist.
	ErrSheetNotFound = models.ErrSheetNotFound
	// ErrValidation indicates a rejected argument: an empty search term,
	// an empty or unknown column selection, or an empty export set.
	ErrValidation = models.ErrValidation
	// ErrExportIO indicates the destination could not be created or written.
	ErrExportIO = models.ErrExportIO
)

// SheetError wraps a failure scoped to one sheet of a source.
type SheetError = models.SheetError

// Package main provides the CLI entry point for controlf-go.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/controlf/controlf-go/internal/tui"
	"github.com/controlf/controlf-go/pkg/controlf"
)

var (
	sheetName   string
	allSheets   bool
	modeName    string
	columns     []string
	trace       bool
	formatName  string
	outputPath  string
	delimiter   string
	sampleLines int
	verbose     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "controlf [input file]",
		Short: "Search spreadsheet files and export filtered columns",
		Long: `controlf loads an Excel workbook or delimited text file, finds a
search term across its sheets, and exports a column-reduced view of
the matches as JSON, CSV, or xlsx.

Without a subcommand it opens the interactive terminal UI.`,
		Args: cobra.ExactArgs(1),
		RunE: runTUI,
	}
	rootCmd.PersistentFlags().StringVar(&delimiter, "delimiter", "", "Force the field delimiter for delimited text (default: infer)")
	rootCmd.PersistentFlags().IntVar(&sampleLines, "sample-lines", 10, "Lines sampled for delimiter inference")

	sheetsCmd := &cobra.Command{
		Use:   "sheets [input file]",
		Short: "List the sheets of a source file",
		Args:  cobra.ExactArgs(1),
		RunE:  runSheets,
	}

	searchCmd := &cobra.Command{
		Use:   "search [input file] [term]",
		Short: "Search a source file and print or export the matches",
		Args:  cobra.ExactArgs(2),
		RunE:  runSearch,
	}
	searchCmd.Flags().StringVarP(&sheetName, "sheet", "s", "", "Sheet to search (default: first sheet)")
	searchCmd.Flags().BoolVarP(&allSheets, "all", "a", false, "Search all sheets")
	searchCmd.Flags().StringVarP(&modeName, "mode", "m", "substring", "Match mode: substring, exact")
	searchCmd.Flags().StringSliceVarP(&columns, "columns", "c", nil, "Columns to export (default: all matched columns)")
	searchCmd.Flags().BoolVar(&trace, "trace", false, "Prepend sheet and row trace columns to the export")
	searchCmd.Flags().StringVarP(&formatName, "format", "f", "csv", "Export format: json, csv, xlsx")
	searchCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Export file path (default: print matches)")
	searchCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(sheetsCmd, searchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadOptions() (controlf.LoadOptions, error) {
	opts := controlf.DefaultLoadOptions()
	if sampleLines > 0 {
		opts.SampleLines = sampleLines
	}
	switch delimiter {
	case "":
	case ",", ";", "|":
		opts.Delimiter = rune(delimiter[0])
	case "\\t", "tab":
		opts.Delimiter = '\t'
	default:
		return opts, fmt.Errorf("unsupported delimiter %q (use , ; | or tab)", delimiter)
	}
	return opts, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	return tui.Run(args[0], opts)
}

func runSheets(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	src, err := controlf.Load(args[0], opts)
	if err != nil {
		return err
	}
	defer src.Close()

	for _, name := range src.Sheets() {
		fmt.Println(name)
	}
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	opts, err := loadOptions()
	if err != nil {
		return err
	}
	mode, err := controlf.ParseMode(modeName)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := controlf.Load(args[0], opts)
	if err != nil {
		return err
	}
	defer src.Close()
	logger.Info("source loaded",
		zap.String("source_id", src.ID.String()),
		zap.String("path", src.Path),
		zap.String("kind", src.Kind.String()),
		zap.Int("sheets", len(src.Sheets())))

	scope := controlf.AllSheets
	if !allSheets {
		name := sheetName
		if name == "" {
			name = src.Sheets()[0]
		}
		scope = controlf.SheetScope(name)
	}

	rs, err := controlf.Search(ctx, src, scope, args[1], mode)
	if err != nil {
		return err
	}
	logger.Info("search finished",
		zap.String("source_id", src.ID.String()),
		zap.String("term", rs.Term),
		zap.Int("matches", len(rs.Matches)))

	if outputPath == "" {
		for _, m := range rs.Matches {
			fmt.Printf("%s\t%d\t%s\t%s\n", m.Sheet, m.Row, m.Column, m.Value)
		}
		return nil
	}

	if len(rs.Matches) == 0 {
		return fmt.Errorf("no matches for %q, nothing to export", rs.Term)
	}
	format, err := controlf.ParseFormat(formatName)
	if err != nil {
		return err
	}
	cols := columns
	if len(cols) == 0 {
		cols = rs.Columns
	}
	p, err := controlf.Project(rs, cols, trace)
	if err != nil {
		return err
	}
	if err := controlf.Export(p, format, outputPath); err != nil {
		return err
	}
	logger.Info("export written",
		zap.String("path", outputPath),
		zap.String("format", string(format)),
		zap.Int("rows", len(p.Rows)),
		zap.String("columns", strings.Join(p.Columns, ",")))
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		config.Development = true
	}
	return config.Build()
}

// Package cmd — convert command.
// This is the main command that orchestrates the pipeline:
// import to Markdown, then emit the selected output format.
//
// It handles flag validation, emitter selection, and output writing.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/markconvert/config"
	"github.com/gaurav-prasanna/markconvert/core"
	"github.com/gaurav-prasanna/markconvert/core/output"
)

// Flag variables.
var (
	flagMarkdown  bool
	flagDocx      bool
	flagPDF       bool
	flagRTF       bool
	flagOutputDir string
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a document to the specified output format",
	Long: `Convert imports a document (PDF, image, office file, or plain text) into
Markdown, then emits the selected output format.

Examples:
  markconvert convert scan.pdf --markdown
  markconvert convert notes.md --docx --output_dir ./out
  markconvert convert report.docx --rtf
  markconvert convert slides.pptx --pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	// Output format flags (mutually exclusive).
	convertCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown")
	convertCmd.Flags().BoolVar(&flagDocx, "docx", false, "Output DOCX")
	convertCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")
	convertCmd.Flags().BoolVar(&flagRTF, "rtf", false, "Output RTF")

	// Output directory.
	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	format, err := selectFormat()
	if err != nil {
		return err
	}

	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("input file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger()

	importer := buildImporter(cfg, logger)
	emitter := buildEmitters(cfg)[format]

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	ctx := context.Background()

	markdown, err := importer.Import(ctx, inputPath)
	if err != nil {
		return err
	}

	data, err := emitter.Emit(markdown)
	if err != nil {
		return &core.ExportError{Format: format, Err: err}
	}

	path, err := writer.Write(inputPath, data, emitter.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// selectFormat checks that exactly one output format flag is set and
// returns its name.
func selectFormat() (string, error) {
	selected := make([]string, 0, 4)
	for name, set := range map[string]bool{
		"markdown": flagMarkdown,
		"docx":     flagDocx,
		"pdf":      flagPDF,
		"rtf":      flagRTF,
	} {
		if set {
			selected = append(selected, name)
		}
	}

	switch len(selected) {
	case 0:
		return "", fmt.Errorf("exactly one output format is required: --markdown, --docx, --pdf, or --rtf")
	case 1:
		return selected[0], nil
	default:
		return "", fmt.Errorf("only one output format allowed per run (got %d)", len(selected))
	}
}

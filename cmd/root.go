// Package cmd implements the CLI commands for markconvert using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "markconvert",
	Short: "markconvert — convert documents to Markdown and back",
	Long: `markconvert is a document conversion pipeline. It imports PDFs, images,
and office documents into Markdown, and exports Markdown to DOCX, PDF, or RTF.

Usage:
  markconvert convert <file> [flags]
  markconvert serve [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package ui

import (
	"fmt"
	"io"
	"log"

	"arup/internal/file"
	"arup/internal/reporter"
	"arup/pkg/types"
	"arup/pkg/utils"
)

// ConsoleUI writes the run's human-readable output
type ConsoleUI struct {
	out io.Writer
}

// NewConsoleUI creates a console UI writing to out
func NewConsoleUI(out io.Writer) *ConsoleUI {
	return &ConsoleUI{out: out}
}

// ShowMessage displays a diagnostic message to the user
func (c *ConsoleUI) ShowMessage(message string) {
	log.Printf("%s\n", message)
}

// ShowBanner announces what is about to be uploaded
func (c *ConsoleUI) ShowBanner(collection *file.Collection) {
	if !collection.IsDir {
		fmt.Fprintf(c.out, "Uploading single file: %s\n\n", collection.Targets[0].FileName)
		return
	}

	fmt.Fprintf(c.out, "Found %d files in directory:\n\n", len(collection.Targets))
	for _, target := range collection.Targets {
		fmt.Fprintf(c.out, "  - %s\n", target.RelativePath)
	}
	fmt.Fprintln(c.out)
}

// ShowUploading announces the start of a file's upload
func (c *ConsoleUI) ShowUploading(target types.UploadTarget) {
	fmt.Fprintf(c.out, "Uploading %s...\n", target.DisplayName())
}

// ShowSuccess prints the permanent result block of a finished upload
func (c *ConsoleUI) ShowSuccess(target types.UploadTarget, outcome types.UploadOutcome) {
	fmt.Fprintf(c.out, "\n✓ Successfully uploaded %s\n", outcome.File)
	fmt.Fprintf(c.out, "  Size: %s\n", utils.FormatFileSize(target.Size))
	fmt.Fprintf(c.out, "  Transaction ID: %s\n", outcome.TransactionID)
	fmt.Fprintf(c.out, "  URL: %s\n\n", outcome.URL)
}

// ShowSummary prints every recorded outcome
func (c *ConsoleUI) ShowSummary(results *reporter.Aggregator) error {
	return results.WriteSummary(c.out)
}

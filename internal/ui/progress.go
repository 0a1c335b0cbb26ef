package ui

import (
	"fmt"
	"io"
	"strings"

	"arup/internal/reporter"

	"github.com/schollz/progressbar/v3"
)

const (
	filledCell = "█"
	emptyCell  = "░"
)

// ProgressUI renders chunk progress for one file at a time
type ProgressUI struct {
	out   io.Writer
	width int
	bar   *progressbar.ProgressBar
}

// NewProgressUI creates a progress UI writing a bar of width cells to out
func NewProgressUI(out io.Writer, width int) *ProgressUI {
	return &ProgressUI{out: out, width: width}
}

// Start initializes the progress bar for a new file
func (p *ProgressUI) Start(state *reporter.ProgressState) {
	p.bar = progressbar.NewOptions(100,
		progressbar.OptionSetWriter(p.out),
		progressbar.OptionSetWidth(p.width),
		progressbar.OptionSetDescription(chunkDescription(state)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        filledCell,
			SaucerHead:    filledCell,
			SaucerPadding: emptyCell,
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionClearOnFinish(),
	)
}

// Update renders the state after a chunk has been uploaded
func (p *ProgressUI) Update(state *reporter.ProgressState) {
	if p.bar == nil {
		return
	}
	p.bar.Describe(chunkDescription(state))
	_ = p.bar.Set(state.Percent())
}

// Complete replaces the live bar with a permanent 100% line
func (p *ProgressUI) Complete(state *reporter.ProgressState) {
	if p.bar != nil {
		_ = p.bar.Finish()
		p.bar = nil
	}
	fmt.Fprintf(p.out, "\r%s\n", CompletedLine(p.width, state.TotalChunks))
}

// Abort clears the live bar after a failed upload
func (p *ProgressUI) Abort() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Clear()
	p.bar = nil
	fmt.Fprintln(p.out)
}

// CompletedLine is the line left on screen once a file's chunks are all uploaded
func CompletedLine(width, totalChunks int) string {
	return fmt.Sprintf("  [%s] 100%% (%d/%d chunks)", strings.Repeat(filledCell, width), totalChunks, totalChunks)
}

func chunkDescription(state *reporter.ProgressState) string {
	return fmt.Sprintf("  (%d/%d chunks)", state.UploadedChunks, state.TotalChunks)
}

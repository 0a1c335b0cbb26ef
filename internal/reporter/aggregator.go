package reporter

import (
	"fmt"
	"io"

	"arup/pkg/types"
)

// SummaryHeader introduces the final list of uploaded files
const SummaryHeader = "=== Upload Summary ==="

// Aggregator collects upload outcomes in the order files finish
type Aggregator struct {
	outcomes []types.UploadOutcome
}

// NewAggregator creates an empty aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Record appends the outcome of a completed upload
func (a *Aggregator) Record(outcome types.UploadOutcome) {
	a.outcomes = append(a.outcomes, outcome)
}

// Outcomes returns a copy of the recorded outcomes
func (a *Aggregator) Outcomes() []types.UploadOutcome {
	out := make([]types.UploadOutcome, len(a.outcomes))
	copy(out, a.outcomes)
	return out
}

// Len returns the number of recorded outcomes
func (a *Aggregator) Len() int {
	return len(a.outcomes)
}

// WriteSummary writes the summary header followed by one "<file>: <url>" line per outcome
func (a *Aggregator) WriteSummary(w io.Writer) error {
	if _, err := fmt.Fprintln(w, SummaryHeader); err != nil {
		return err
	}
	for _, outcome := range a.outcomes {
		if _, err := fmt.Fprintf(w, "%s: %s\n", outcome.File, outcome.URL); err != nil {
			return err
		}
	}
	return nil
}

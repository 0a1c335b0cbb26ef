package manifest

import (
	"context"
	"time"

	"arup/pkg/types"

	"github.com/google/uuid"
)

// Entry describes one uploaded file in a run manifest
type Entry struct {
	File          string `json:"file"`
	TransactionID string `json:"transactionId"`
	URL           string `json:"url"`
	ContentType   string `json:"contentType"`
	Size          int64  `json:"size"`
}

// Run is the record of a completed upload run
type Run struct {
	ID         string    `json:"runId"`
	Input      string    `json:"input"`
	Gateway    string    `json:"gateway"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Files      []Entry   `json:"files"`
}

// NewRun starts a run record for the given input path
func NewRun(input, gateway string, startedAt time.Time) *Run {
	return &Run{
		ID:        uuid.NewString(),
		Input:     input,
		Gateway:   gateway,
		StartedAt: startedAt.UTC(),
		Files:     []Entry{},
	}
}

// Add records an uploaded file
func (r *Run) Add(target types.UploadTarget, outcome types.UploadOutcome, contentType string) {
	r.Files = append(r.Files, Entry{
		File:          outcome.File,
		TransactionID: outcome.TransactionID,
		URL:           outcome.URL,
		ContentType:   contentType,
		Size:          target.Size,
	})
}

// Finish stamps the completion time
func (r *Run) Finish(finishedAt time.Time) {
	r.FinishedAt = finishedAt.UTC()
}

// Publisher stores the manifest of a completed run
type Publisher interface {
	Publish(ctx context.Context, run *Run) error
}

// NoopPublisher discards manifests
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, run *Run) error {
	return nil
}

// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package app

import (
	"context"

	"arup/internal/file"
	"arup/internal/reporter"
	"arup/pkg/types"
)

// Uploader defines the interface for the upload application logic
type Uploader interface {
	// Run uploads every file found at opts.InputPath
	Run(ctx context.Context, opts *UploaderOptions) error
}

// ConsoleUI defines the console output the uploader drives
type ConsoleUI interface {
	ShowMessage(message string)
	ShowBanner(collection *file.Collection)
	ShowUploading(target types.UploadTarget)
	ShowSuccess(target types.UploadTarget, outcome types.UploadOutcome)
	ShowSummary(results *reporter.Aggregator) error
}

// ProgressUI defines the per-chunk progress rendering the uploader drives
type ProgressUI interface {
	Start(state *reporter.ProgressState)
	Update(state *reporter.ProgressState)
	Complete(state *reporter.ProgressState)
	Abort()
}

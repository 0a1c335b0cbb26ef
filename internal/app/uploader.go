package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"arup/internal/config"
	uperrors "arup/internal/errors"
	"arup/internal/file"
	"arup/internal/manifest"
	"arup/internal/reporter"
	"arup/internal/transport"
	"arup/pkg/types"
	"arup/pkg/utils"
)

// UploaderOptions configures the uploader application behavior
type UploaderOptions struct {
	InputPath  string // Required: file or folder to upload
	WalletPath string // Required: JWK wallet file
}

// UploaderApp implements the upload application logic
type UploaderApp struct {
	config    *config.Config
	collector *file.Collector
	newClient transport.ClientFactory
	progress  ProgressUI
	ui        ConsoleUI
	results   *reporter.Aggregator
	publisher manifest.Publisher
}

// NewUploaderApp creates a new uploader application
func NewUploaderApp(
	cfg *config.Config,
	collector *file.Collector,
	newClient transport.ClientFactory,
	progress ProgressUI,
	ui ConsoleUI,
	results *reporter.Aggregator,
	publisher manifest.Publisher,
) *UploaderApp {
	return &UploaderApp{
		config:    cfg,
		collector: collector,
		newClient: newClient,
		progress:  progress,
		ui:        ui,
		results:   results,
		publisher: publisher,
	}
}

// Run uploads every file at opts.InputPath, one after another, and prints the summary.
// The first error aborts the run; the summary is only printed when every file succeeded.
func (u *UploaderApp) Run(ctx context.Context, opts *UploaderOptions) error {
	if opts.InputPath == "" {
		return uperrors.ErrUsage
	}

	resolved, _, err := utils.ResolveInputPath(opts.InputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", uperrors.ErrPathNotFound, resolved)
		}
		return fmt.Errorf("%w: %v", uperrors.ErrIO, err)
	}

	wallet, err := transport.LoadWallet(opts.WalletPath)
	if err != nil {
		return err
	}

	collection, err := u.collector.Collect(resolved)
	if err != nil {
		return err
	}

	u.ui.ShowBanner(collection)
	if len(collection.Targets) == 0 {
		return fmt.Errorf("%w: %s", uperrors.ErrEmptyInput, resolved)
	}

	client, err := u.newClient(wallet)
	if err != nil {
		return err
	}

	run := manifest.NewRun(resolved, u.config.Arweave.GatewayHost, time.Now())
	for _, target := range collection.Targets {
		outcome, contentType, err := u.uploadFile(ctx, client, target)
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", target.DisplayName(), err)
		}
		u.results.Record(outcome)
		run.Add(target, outcome, contentType)
	}
	run.Finish(time.Now())

	if err := u.ui.ShowSummary(u.results); err != nil {
		return fmt.Errorf("failed to print summary: %w", err)
	}

	if err := u.publisher.Publish(ctx, run); err != nil {
		u.ui.ShowMessage(fmt.Sprintf("Warning: could not publish manifest: %v", err))
	}
	return nil
}

// uploadFile runs the full transaction lifecycle for one file
func (u *UploaderApp) uploadFile(ctx context.Context, client transport.Client, target types.UploadTarget) (types.UploadOutcome, string, error) {
	u.ui.ShowUploading(target)

	data, err := os.ReadFile(target.AbsolutePath)
	if err != nil {
		return types.UploadOutcome{}, "", fmt.Errorf("%w: failed to read file: %v", uperrors.ErrIO, err)
	}
	contentType := file.ContentType(target.AbsolutePath)

	tx, err := client.CreateTransaction(ctx, data)
	if err != nil {
		return types.UploadOutcome{}, "", fmt.Errorf("%w: failed to create transaction: %v", uperrors.ErrTransaction, err)
	}

	for _, tag := range types.BuildTags(target, contentType) {
		tx.AddTag(tag.Name, tag.Value)
	}

	if err := client.Sign(ctx, tx); err != nil {
		return types.UploadOutcome{}, "", fmt.Errorf("%w: failed to sign transaction: %v", uperrors.ErrTransaction, err)
	}

	uploader, err := client.Uploader(ctx, tx)
	if err != nil {
		return types.UploadOutcome{}, "", fmt.Errorf("%w: failed to get uploader: %v", uperrors.ErrTransaction, err)
	}

	if err := u.driveUploader(ctx, uploader); err != nil {
		return types.UploadOutcome{}, "", err
	}

	outcome := types.UploadOutcome{
		File:          target.DisplayName(),
		TransactionID: tx.ID(),
		URL:           u.config.Arweave.TransactionURL(tx.ID()),
	}
	u.ui.ShowSuccess(target, outcome)
	return outcome, contentType, nil
}

// driveUploader uploads chunks until the uploader reports completion
func (u *UploaderApp) driveUploader(ctx context.Context, uploader transport.ChunkUploader) error {
	state := reporter.NewProgressState(uploader.TotalChunks())
	u.progress.Start(state)

	for !uploader.IsComplete() {
		if err := ctx.Err(); err != nil {
			u.progress.Abort()
			return fmt.Errorf("upload interrupted: %w", err)
		}

		if err := uploader.UploadChunk(); err != nil {
			u.progress.Abort()
			return fmt.Errorf("%w: chunk %d: %v", uperrors.ErrNetwork, state.UploadedChunks+1, err)
		}

		state.Advance(uploader.UploadedChunks(), uploader.TotalChunks())
		u.progress.Update(state)
	}

	state.Finalize(uploader.TotalChunks())
	u.progress.Complete(state)
	return nil
}

package manifest

import (
	"context"
	"fmt"
	"log"

	"arup/internal/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

// RefSetter is the part of a Realtime Database reference the publisher writes through
type RefSetter interface {
	Set(ctx context.Context, v interface{}) error
}

// FirebasePublisher writes run manifests to the Firebase Realtime Database
type FirebasePublisher struct {
	child func(path string) RefSetter
}

// NewFirebasePublisher connects to the database configured in cfg
func NewFirebasePublisher(ctx context.Context, cfg *config.ManifestConfig) (*FirebasePublisher, error) {
	opt := option.WithCredentialsFile(cfg.CredentialsPath)

	firebaseConfig := &firebase.Config{
		DatabaseURL: cfg.DatabaseURL,
	}

	app, err := firebase.NewApp(ctx, firebaseConfig, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting database client: %w", err)
	}

	root := client.NewRef(cfg.Root)
	return newFirebasePublisher(func(path string) RefSetter {
		return root.Child(path)
	}), nil
}

func newFirebasePublisher(child func(path string) RefSetter) *FirebasePublisher {
	return &FirebasePublisher{child: child}
}

// Publish stores run under its id
func (f *FirebasePublisher) Publish(ctx context.Context, run *Run) error {
	if run.ID == "" {
		return fmt.Errorf("run has no id")
	}
	if err := f.child(run.ID).Set(ctx, run); err != nil {
		return fmt.Errorf("error writing manifest %s: %w", run.ID, err)
	}

	log.Printf("Manifest %s stored with %d files", run.ID, len(run.Files))
	return nil
}

// NewPublisher returns a Firebase publisher when the manifest is enabled, or a no-op otherwise
func NewPublisher(ctx context.Context, cfg *config.ManifestConfig) (Publisher, error) {
	if !cfg.Enabled {
		return NoopPublisher{}, nil
	}
	return NewFirebasePublisher(ctx, cfg)
}

var _ RefSetter = (*db.Ref)(nil)

package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"arup/internal/app"
	"arup/internal/file"
	"arup/internal/manifest"
	"arup/internal/reporter"
	"arup/internal/transport"
	"arup/internal/ui"

	"github.com/spf13/viper"
)

type UploadFlags struct {
	InputPath  string
	WalletPath string
	Gateway    string
	Manifest   bool
}

var uploadFlags UploadFlags

func init() {
	// Define flags with struct binding
	rootCmd.Flags().StringVarP(&uploadFlags.WalletPath, "wallet", "w", "", "Path to the JWK wallet (default is wallet.json next to the binary)")
	rootCmd.Flags().StringVarP(&uploadFlags.Gateway, "gateway", "g", "", "Arweave gateway host (default is arweave.net)")
	rootCmd.Flags().BoolVar(&uploadFlags.Manifest, "manifest", false, "Store a run manifest in the configured Firebase database")

	// Bind flags to viper for environment variable support
	viper.BindPFlag("arweave.wallet_path", rootCmd.Flags().Lookup("wallet"))
	viper.BindPFlag("arweave.gateway_host", rootCmd.Flags().Lookup("gateway"))
	viper.BindPFlag("manifest.enabled", rootCmd.Flags().Lookup("manifest"))
}

// runUploaderApp creates and runs the uploader application
func runUploaderApp(flags *UploadFlags) error {
	ctx := createContext()

	walletPath, err := cfg.Arweave.ResolveWalletPath()
	if err != nil {
		return err
	}

	uploaderApp := app.NewUploaderApp(cfg, file.NewCollector(), transport.NewArweaveClientFactory(&cfg.Arweave),
		ui.NewProgressUI(os.Stdout, cfg.Progress.BarWidth), ui.NewConsoleUI(os.Stdout),
		reporter.NewAggregator(), createPublisher(ctx))

	opts := &app.UploaderOptions{
		InputPath:  flags.InputPath,
		WalletPath: walletPath,
	}
	return uploaderApp.Run(ctx, opts)
}

// createPublisher falls back to a no-op publisher when Firebase cannot be reached
func createPublisher(ctx context.Context) manifest.Publisher {
	publisher, err := manifest.NewPublisher(ctx, &cfg.Manifest)
	if err != nil {
		log.Printf("Warning: manifest disabled: %v", fmt.Errorf("failed to initialize Firebase client: %w", err))
		return manifest.NoopPublisher{}
	}
	return publisher
}

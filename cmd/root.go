package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"arup/internal/config"
	uperrors "arup/internal/errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfg     *config.Config
	cfgFile string
)

// rootCmd represents the base command: it uploads the file or folder given as its argument
var rootCmd = &cobra.Command{
	Use:   "arup <file-or-folder-path>",
	Short: "Upload a file or folder to Arweave",
	Long: `arup uploads a single file or an entire directory tree to the Arweave
permaweb. For every file it will:

1. Create a data transaction tagged with Content-Type, App-Name, File-Name
   and, for files inside a folder, File-Path
2. Sign it with the wallet.json stored next to the arup binary
3. Upload it chunk by chunk while showing progress

A summary of retrieval URLs is printed once every file has been uploaded.

Usage:
  Upload a file:   arup ./logo.png
  Upload a folder: arup ./dist`,
	Args:          validateArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize viper configuration
		initConfig()

		var err error
		cfg, err = config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		uploadFlags.InputPath = args[0]
		return runUploaderApp(&uploadFlags)
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.arup.yaml)")

	// Set up viper environment variable support
	viper.SetEnvPrefix("ARUP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// validateArgs requires exactly one file or folder path
func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return uperrors.ErrUsage
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: expected one path, got %d", uperrors.ErrUsage, len(args))
	}
	return nil
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			log.Printf("Warning: Could not find home directory: %v", err)
			return
		}

		// Search config in home directory with name ".arup" (without extension)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".arup")
	}

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		log.Printf("Using config file: %s", viper.ConfigFileUsed())
	}
}

// Execute runs the root command and exits non-zero on any error.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		if uperrors.IsUsage(err) {
			fmt.Fprintf(os.Stderr, "Usage: %s\n", rootCmd.Use)
		}
		os.Exit(uperrors.ExitCode(err))
	}
}

// createContext creates a context that cancels on interrupt signals.
// Once cancelled the handler is released, so a second Ctrl-C terminates the process.
func createContext() context.Context {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-ctx.Done()
		stop()
		fmt.Println("\nReceived interrupt signal, stopping after the current chunk...")
	}()

	return ctx
}

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"arup/pkg/types"
	"arup/pkg/utils"

	"github.com/spf13/viper"
)

var (
	ErrInvalidGatewayHost         = errors.New("gateway host must be set")
	ErrInvalidProtocol            = errors.New("protocol must be http or https")
	ErrInvalidPort                = errors.New("port must be between 1 and 65535")
	ErrInvalidBarWidth            = errors.New("progress bar width must be greater than 0")
	ErrInvalidFirebaseConfig      = errors.New("Firebase credentials path must be set when the manifest is enabled")
	ErrInvalidFirebaseDatabaseURL = errors.New("Firebase database URL must be set when the manifest is enabled")
)

// DefaultWalletFile is looked up next to the executable when no wallet path is configured
const DefaultWalletFile = "wallet.json"

// Config holds all application configuration
type Config struct {
	Arweave  ArweaveConfig  `json:"arweave" mapstructure:"arweave"`
	Progress ProgressConfig `json:"progress" mapstructure:"progress"`
	Manifest ManifestConfig `json:"manifest" mapstructure:"manifest"`
}

// ArweaveConfig holds the gateway and wallet settings
type ArweaveConfig struct {
	GatewayHost string `json:"gateway_host" mapstructure:"gateway_host"`
	Port        int    `json:"port" mapstructure:"port"`
	Protocol    string `json:"protocol" mapstructure:"protocol"`
	WalletPath  string `json:"wallet_path" mapstructure:"wallet_path"`
}

// ProgressConfig holds progress bar settings
type ProgressConfig struct {
	BarWidth int `json:"bar_width" mapstructure:"bar_width"`
}

// ManifestConfig holds the Firebase run manifest settings
type ManifestConfig struct {
	Enabled         bool   `json:"enabled" mapstructure:"enabled"`
	CredentialsPath string `json:"credentials_path" mapstructure:"credentials_path"`
	DatabaseURL     string `json:"database_url" mapstructure:"database_url"`
	Root            string `json:"root" mapstructure:"root"`
}

// NewDefaultConfig returns a configuration with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Arweave: ArweaveConfig{
			GatewayHost: "arweave.net",
			Port:        443,
			Protocol:    "https",
			WalletPath:  "", // Resolved next to the executable
		},
		Progress: ProgressConfig{
			BarWidth: 30,
		},
		Manifest: ManifestConfig{
			Enabled:         false,
			CredentialsPath: "",
			DatabaseURL:     "",
			Root:            "uploads",
		},
	}
}

// SetDefaults registers every key of cfg with v so environment variables can override them
func SetDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("arweave.gateway_host", cfg.Arweave.GatewayHost)
	v.SetDefault("arweave.port", cfg.Arweave.Port)
	v.SetDefault("arweave.protocol", cfg.Arweave.Protocol)
	v.SetDefault("arweave.wallet_path", cfg.Arweave.WalletPath)
	v.SetDefault("progress.bar_width", cfg.Progress.BarWidth)
	v.SetDefault("manifest.enabled", cfg.Manifest.Enabled)
	v.SetDefault("manifest.credentials_path", cfg.Manifest.CredentialsPath)
	v.SetDefault("manifest.database_url", cfg.Manifest.DatabaseURL)
	v.SetDefault("manifest.root", cfg.Manifest.Root)
}

// Load builds the configuration from defaults overlaid with everything v knows about
func Load(v *viper.Viper) (*Config, error) {
	cfg := NewDefaultConfig()
	SetDefaults(v, cfg)

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return cfg, nil
}

// Validate ensures the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Arweave.GatewayHost) == "" {
		return ErrInvalidGatewayHost
	}
	if c.Arweave.Protocol != "http" && c.Arweave.Protocol != "https" {
		return ErrInvalidProtocol
	}
	if c.Arweave.Port <= 0 || c.Arweave.Port > 65535 {
		return ErrInvalidPort
	}
	if c.Progress.BarWidth <= 0 {
		return ErrInvalidBarWidth
	}
	if c.Manifest.Enabled {
		if c.Manifest.CredentialsPath == "" {
			return ErrInvalidFirebaseConfig
		}
		if c.Manifest.DatabaseURL == "" {
			return ErrInvalidFirebaseDatabaseURL
		}
	}
	return nil
}

// NodeURL returns the base URL the Arweave client talks to
func (a ArweaveConfig) NodeURL() string {
	if (a.Protocol == "https" && a.Port == 443) || (a.Protocol == "http" && a.Port == 80) {
		return fmt.Sprintf("%s://%s", a.Protocol, a.GatewayHost)
	}
	return fmt.Sprintf("%s://%s:%d", a.Protocol, a.GatewayHost, a.Port)
}

// TransactionURL returns the retrieval URL of a transaction on the gateway,
// keeping a non-default port the same way NodeURL does
func (a ArweaveConfig) TransactionURL(txID string) string {
	return types.TransactionURL(a.NodeURL(), txID)
}

// ResolveWalletPath returns the configured wallet path, or wallet.json next to the executable
func (a ArweaveConfig) ResolveWalletPath() (string, error) {
	if a.WalletPath != "" {
		return filepath.Abs(a.WalletPath)
	}
	dir, err := utils.ExecutableDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultWalletFile), nil
}

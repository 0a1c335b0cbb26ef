package cmd

import (
	"errors"
	"testing"

	uperrors "arup/internal/errors"
)

func TestValidateArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"no argument", nil, true},
		{"blank argument", []string{"  "}, true},
		{"too many arguments", []string{"a", "b"}, true},
		{"one path", []string{"./dist"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateArgs(rootCmd, tt.args)
			if tt.wantErr {
				if !errors.Is(err, uperrors.ErrUsage) {
					t.Errorf("expected ErrUsage, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestFlagsBoundToConfig(t *testing.T) {
	for _, name := range []string{"wallet", "gateway", "manifest"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected --%s flag", name)
		}
	}
	if rootCmd.PersistentFlags().Lookup("config") == nil {
		t.Error("expected --config flag")
	}
}

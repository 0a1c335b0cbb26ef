package transport

import (
	"fmt"
	"os"

	uperrors "arup/internal/errors"
	"arup/pkg/utils"
)

// LoadWallet reads the JWK wallet file at path and checks that it is a JSON key document
func LoadWallet(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", uperrors.ErrCredentialMissing, path)
		}
		return nil, fmt.Errorf("%w: failed to read %s: %v", uperrors.ErrCredentialInvalid, path, err)
	}

	jwk, err := utils.DecodeJSON[map[string]any](data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", uperrors.ErrCredentialInvalid, path, err)
	}
	if _, ok := jwk["n"]; !ok {
		return nil, fmt.Errorf("%w: %s has no RSA modulus", uperrors.ErrCredentialInvalid, path)
	}

	return data, nil
}

package utils

import (
	"encoding/json"
	"fmt"
)

// DecodeJSON decodes JSON bytes to the specified type
func DecodeJSON[T any](data []byte) (T, error) {
	var result T
	if len(data) == 0 {
		return result, fmt.Errorf("JSON data is empty")
	}

	err := json.Unmarshal(data, &result)
	if err != nil {
		return result, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return result, nil
}

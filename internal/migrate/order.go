package migrate

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

const orderFormatVersion = 1

type orderFile struct {
	Version int      `json:"version"`
	Order   []string `json:"order"`
}

// readOrder reads the user's component order from a legacy order.json. A
// missing file yields an empty order.
func readOrder(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading order file: %w", err)
	}
	var f orderFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing order file: %w", err)
	}
	if f.Version != orderFormatVersion {
		return nil, fmt.Errorf("order file version %d is not supported", f.Version)
	}
	return f.Order, nil
}

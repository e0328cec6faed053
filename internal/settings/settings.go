// Package settings loads the user watchlist: currency codes and stock
// tickers to include in the homepage snapshot.
package settings

import (
	"encoding/json"
	"fmt"
	"os"

	"finview/internal/core"
)

// Settings is the user_settings.json document.
type Settings struct {
	Currencies []string `json:"user_currencies"`
	Stocks     []string `json:"user_stocks"`
}

// Load reads the settings document at path. It is read fresh on every
// call; a missing file or malformed JSON is an ErrConfig.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: read %s: %v", core.ErrConfig, path, err)
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("%w: parse %s: %v", core.ErrConfig, path, err)
	}
	return s, nil
}

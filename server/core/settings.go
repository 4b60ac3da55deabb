package core

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/brawl-arena/config"
	"github.com/quasilyte/gdata"
)

const settingsKey = "flags"

// itemStore is the part of gdata.Manager settings need.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// SettingsStore keeps the runtime flags between runs.
type SettingsStore struct {
	items itemStore
}

// OpenSettings opens the per-user data directory for appName.
func OpenSettings(appName string) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings: %w", err)
	}
	return &SettingsStore{items: m}, nil
}

// Load returns the saved flags, or the zero flags if nothing was saved yet.
func (s *SettingsStore) Load() (config.Flags, error) {
	var flags config.Flags
	data, err := s.items.LoadItem(settingsKey)
	if err != nil {
		return flags, fmt.Errorf("load settings: %w", err)
	}
	if data == nil {
		return flags, nil
	}
	if err := json.Unmarshal(data, &flags); err != nil {
		return flags, fmt.Errorf("parse settings: %w", err)
	}
	return flags, nil
}

func (s *SettingsStore) Save(flags config.Flags) error {
	data, err := json.Marshal(flags)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.items.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

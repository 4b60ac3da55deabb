package core

import (
	"errors"
	"testing"

	"github.com/automoto/brawl-arena/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items map[string][]byte
	err   error
}

func (s *memStore) LoadItem(key string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.items[key], nil
}

func (s *memStore) SaveItem(key string, data []byte) error {
	if s.err != nil {
		return s.err
	}
	s.items[key] = data
	return nil
}

func TestSettingsRoundTrip(t *testing.T) {
	store := &SettingsStore{items: &memStore{items: map[string][]byte{}}}

	flags, err := store.Load()
	require.NoError(t, err)
	assert.Zero(t, flags)

	require.NoError(t, store.Save(config.Flags{NoCost: true, Flashy: true}))
	flags, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Flags{NoCost: true, Flashy: true}, flags)
}

func TestSettingsErrors(t *testing.T) {
	broken := errors.New("disk full")
	store := &SettingsStore{items: &memStore{err: broken}}

	_, err := store.Load()
	assert.ErrorIs(t, err, broken)
	assert.ErrorIs(t, store.Save(config.Flags{}), broken)

	store = &SettingsStore{items: &memStore{items: map[string][]byte{settingsKey: []byte("{")}}}
	_, err = store.Load()
	assert.Error(t, err)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviderKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		provider string
		country  string
		expected ProviderKey
	}{
		{"upper cases and trims", " Cantv ", "venezuela", ProviderKey{"CANTV", "VENEZUELA"}},
		{"empty provider", "", "Colombia", ProviderKey{"DESCONOCIDO", "COLOMBIA"}},
		{"placeholder provider", "Desconocido", "", ProviderKey{"DESCONOCIDO", "DESCONOCIDO"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, NewProviderKey(tt.provider, tt.country))
		})
	}
}

func TestProviderKey_Label(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "CANTV (VENEZUELA)", NewProviderKey("cantv", "Venezuela").Label())
}

func TestParseProviderKey(t *testing.T) {
	t.Parallel()

	key, err := ParseProviderKey("cantv|venezuela")
	require.NoError(t, err)
	assert.Equal(t, NewProviderKey("CANTV", "VENEZUELA"), key)
	assert.Equal(t, "CANTV|VENEZUELA", key.String())

	for _, bad := range []string{"", "CANTV", "|VE", "CANTV|"} {
		_, err := ParseProviderKey(bad)
		assert.Error(t, err, bad)
	}
}

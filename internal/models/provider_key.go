package models

import (
	"fmt"
	"strings"
)

// UnknownPlaceholder fills display attributes that could not be resolved.
const UnknownPlaceholder = "Desconocido"

// ProviderKey identifies one trend series: an upstream provider in a country.
// Both halves are normalized by NewProviderKey so the selector options and the
// per-record bucketing compare equal structurally.
type ProviderKey struct {
	Provider string `json:"provider"`
	Country  string `json:"country"`
}

func NewProviderKey(provider, country string) ProviderKey {
	return ProviderKey{
		Provider: normalizeKeyPart(provider),
		Country:  normalizeKeyPart(country),
	}
}

func normalizeKeyPart(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return strings.ToUpper(UnknownPlaceholder)
	}
	return s
}

// Label renders the composite display string, e.g. "CANTV (VENEZUELA)".
func (k ProviderKey) Label() string {
	return k.Provider + " (" + k.Country + ")"
}

// String renders the "PROVIDER|COUNTRY" query form accepted by ParseProviderKey.
func (k ProviderKey) String() string {
	return k.Provider + "|" + k.Country
}

// ParseProviderKey parses the "PROVIDER|COUNTRY" query form.
func ParseProviderKey(s string) (ProviderKey, error) {
	provider, country, ok := strings.Cut(s, "|")
	if !ok || strings.TrimSpace(provider) == "" || strings.TrimSpace(country) == "" {
		return ProviderKey{}, fmt.Errorf("invalid provider key %q: want PROVIDER|COUNTRY", s)
	}
	return NewProviderKey(provider, country), nil
}

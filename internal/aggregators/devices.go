package aggregators

import (
	"strings"

	"netops-dashboard/internal/models"
)

type DeviceFilter struct {
	Country  string
	Provider string
}

// FilterDevices matches country and provider case-insensitively. A device
// matches a provider when either WAN link is served by it.
func FilterDevices(inventory []models.InventoryRow, filter DeviceFilter) []models.InventoryRow {
	country := strings.TrimSpace(filter.Country)
	provider := strings.TrimSpace(filter.Provider)

	out := make([]models.InventoryRow, 0, len(inventory))
	for _, row := range inventory {
		if country != "" && !strings.EqualFold(strings.TrimSpace(row.Country), country) {
			continue
		}
		if provider != "" &&
			!strings.EqualFold(strings.TrimSpace(row.Wan1ProviderName), provider) &&
			!strings.EqualFold(strings.TrimSpace(row.Wan2ProviderName), provider) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// DashboardStatus is the passive status strip: which snapshot is shown,
// where it came from, and what is open right now.
type DashboardStatus struct {
	Ready    bool                 `json:"ready"`
	Snapshot *models.SnapshotInfo `json:"snapshot,omitempty"`
	Activity *ActivitySummary     `json:"activity,omitempty"`
}

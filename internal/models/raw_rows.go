package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FlexibleID accepts identifiers encoded as JSON strings or numbers.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexibleID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexibleID(n.String())
	return nil
}

func (f FlexibleID) String() string {
	return string(f)
}

// FailureRow is a row of network_failures_jj.
type FailureRow struct {
	ID                    FlexibleID `json:"id"`
	NetworkID             FlexibleID `json:"network_id"`
	StartTime             string     `json:"start_time"`
	LifecycleStage        string     `json:"lifecycle_stage"`
	SiteImpact            string     `json:"site_impact"`
	DowntimeMinutes       *float64   `json:"total_downtime_minutes"`
	StoreName             string     `json:"store_name"`
	StoreCode             string     `json:"store_code"`
	CrossStreet           string     `json:"cross_street"`
	Country               string     `json:"country"`
	ProviderName          string     `json:"provider_name"`
	Wan1MassiveIncidentID FlexibleID `json:"wan1_massive_incident_id"`
	Wan2MassiveIncidentID FlexibleID `json:"wan2_massive_incident_id"`
	IsMassive             bool       `json:"is_massive"`
}

// DegradationRow is a row of network_degradations_jj.
type DegradationRow struct {
	ID           FlexibleID `json:"id"`
	NetworkID    FlexibleID `json:"network_id"`
	StartTime    string     `json:"start_time"`
	Status       string     `json:"status"`
	Description  string     `json:"description"`
	StoreName    string     `json:"store_name"`
	Country      string     `json:"country"`
	ProviderName string     `json:"provider_name"`
}

// MassiveIncidentRow is a row of massive_incidents_jj.
type MassiveIncidentRow struct {
	ID             FlexibleID `json:"id"`
	StartTime      string     `json:"start_time"`
	Status         string     `json:"status"`
	Country        string     `json:"country"`
	ProviderName   string     `json:"isp_name"`
	AffectedStores int        `json:"affected_stores_count"`
}

// InventoryRow is a row of devices_inventory_jj with the provider join flattened.
type InventoryRow struct {
	NetworkID        FlexibleID `json:"network_id"`
	StoreName        string     `json:"store_name"`
	StoreCode        string     `json:"store_code"`
	CrossStreet      string     `json:"cross_street"`
	Country          string     `json:"country"`
	Wan1ProviderName string     `json:"wan1_provider_name"`
	Wan2ProviderName string     `json:"wan2_provider_name"`
	DeviceSerial     string     `json:"device_serial"`
	DeviceModel      string     `json:"device_model"`
}

// RawSnapshot groups the four record sets read in one fetch.
type RawSnapshot struct {
	Failures     []FailureRow         `json:"failures"`
	Degradations []DegradationRow     `json:"degradations"`
	Massive      []MassiveIncidentRow `json:"massive"`
	Inventory    []InventoryRow       `json:"inventory"`
}

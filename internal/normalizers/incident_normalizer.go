package normalizers

import (
	"math"
	"sort"
	"strings"
	"time"

	"netops-dashboard/internal/models"

	"github.com/rs/zerolog"
)

const (
	massiveNetworkIDPrefix = "MASIVA-"
	massiveStoreNamePrefix = "Afectación Masiva "
)

//go:generate mockgen -source=incident_normalizer.go -destination=./mocks/incident_normalizer_mock.go -package=mocks
type IncidentNormalizer interface {
	// Normalize merges the raw record sets into one flat list ordered by
	// StartTime descending, records with an unparseable onset last.
	Normalize(raw *models.RawSnapshot) []models.IncidentRecord
}

type incidentNormalizer struct {
	loc    *time.Location
	logger zerolog.Logger
}

func NewIncidentNormalizer(loc *time.Location, logger zerolog.Logger) IncidentNormalizer {
	if loc == nil {
		loc = time.Local
	}
	return &incidentNormalizer{loc: loc, logger: logger}
}

func (n *incidentNormalizer) Normalize(raw *models.RawSnapshot) []models.IncidentRecord {
	if raw == nil {
		return []models.IncidentRecord{}
	}

	inventory := make(map[string]*models.InventoryRow, len(raw.Inventory))
	for i := range raw.Inventory {
		row := &raw.Inventory[i]
		if id := row.NetworkID.String(); id != "" {
			inventory[id] = row
		}
	}

	records := make([]models.IncidentRecord, 0, len(raw.Failures)+len(raw.Degradations)+len(raw.Massive))
	unparsed := 0
	for i := range raw.Failures {
		rec := n.fromFailure(&raw.Failures[i], inventory)
		if !rec.HasStartTime() {
			unparsed++
		}
		records = append(records, rec)
	}
	for i := range raw.Degradations {
		rec := n.fromDegradation(&raw.Degradations[i], inventory)
		if !rec.HasStartTime() {
			unparsed++
		}
		records = append(records, rec)
	}
	for i := range raw.Massive {
		rec := n.fromMassive(&raw.Massive[i])
		if !rec.HasStartTime() {
			unparsed++
		}
		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].StartTime, records[j].StartTime
		if a.IsZero() || b.IsZero() {
			return !a.IsZero() && b.IsZero()
		}
		return a.After(b)
	})

	if unparsed > 0 {
		n.logger.Debug().Int("unparsed", unparsed).Int("total", len(records)).Msg("records without a parseable start time excluded from time views")
	}

	return records
}

func (n *incidentNormalizer) fromFailure(row *models.FailureRow, inventory map[string]*models.InventoryRow) models.IncidentRecord {
	networkID := row.NetworkID.String()
	startTime, _ := ParseTimestamp(row.StartTime, n.loc)

	rec := models.IncidentRecord{
		ID:              row.ID.String(),
		NetworkID:       networkID,
		StoreName:       firstNonEmpty(row.StoreName, networkID, models.UnknownPlaceholder),
		StoreCode:       firstNonEmpty(row.StoreCode, models.UnknownPlaceholder),
		Country:         firstNonEmpty(row.Country, models.UnknownPlaceholder),
		CrossStreet:     firstNonEmpty(row.CrossStreet, models.UnknownPlaceholder),
		StartTime:       startTime,
		RawStartTime:    row.StartTime,
		DowntimeMinutes: downtimeMinutes(row.DowntimeMinutes),
		LifecycleStage:  models.LifecycleStage(strings.TrimSpace(row.LifecycleStage)),
		EventType:       models.EventTypeStandardFailure,
		SiteImpact:      siteImpact(row.SiteImpact),
		ProviderName:    firstNonEmpty(row.ProviderName, models.UnknownPlaceholder),
		Failure: &models.FailureDetail{
			Wan1MassiveIncidentID: row.Wan1MassiveIncidentID.String(),
			Wan2MassiveIncidentID: row.Wan2MassiveIncidentID.String(),
			IsMassive:             row.IsMassive,
		},
	}

	if inv, ok := inventory[networkID]; ok {
		rec.StoreName = firstNonEmpty(inv.StoreName, rec.StoreName)
		rec.StoreCode = firstNonEmpty(inv.StoreCode, rec.StoreCode)
		rec.CrossStreet = firstNonEmpty(inv.CrossStreet, rec.CrossStreet)
		rec.Country = firstNonEmpty(inv.Country, rec.Country)
		rec.ProviderName = firstNonEmpty(inv.Wan1ProviderName, rec.ProviderName)
		rec.Failure.Wan2ProviderName = inv.Wan2ProviderName
	}

	return rec
}

// fromDegradation never infers a duration: degradations count as incidents
// but carry no billable downtime.
func (n *incidentNormalizer) fromDegradation(row *models.DegradationRow, inventory map[string]*models.InventoryRow) models.IncidentRecord {
	networkID := row.NetworkID.String()
	startTime, _ := ParseTimestamp(row.StartTime, n.loc)

	rec := models.IncidentRecord{
		ID:              row.ID.String(),
		NetworkID:       networkID,
		StoreName:       firstNonEmpty(row.StoreName, networkID, models.UnknownPlaceholder),
		StoreCode:       models.UnknownPlaceholder,
		Country:         firstNonEmpty(row.Country, models.UnknownPlaceholder),
		CrossStreet:     models.UnknownPlaceholder,
		StartTime:       startTime,
		RawStartTime:    row.StartTime,
		DowntimeMinutes: 0,
		LifecycleStage:  models.LifecycleStage(strings.TrimSpace(row.Status)),
		EventType:       models.EventTypeDegradation,
		SiteImpact:      models.SiteImpactDegradation,
		ProviderName:    firstNonEmpty(row.ProviderName, models.UnknownPlaceholder),
		Degradation:     &models.DegradationDetail{Description: row.Description},
	}

	if inv, ok := inventory[networkID]; ok {
		rec.StoreName = firstNonEmpty(inv.StoreName, rec.StoreName)
		rec.StoreCode = firstNonEmpty(inv.StoreCode, rec.StoreCode)
		rec.CrossStreet = firstNonEmpty(inv.CrossStreet, rec.CrossStreet)
		rec.Country = firstNonEmpty(inv.Country, rec.Country)
		rec.ProviderName = firstNonEmpty(inv.Wan1ProviderName, rec.ProviderName)
	}

	return rec
}

// fromMassive synthesizes one record per incident, not per affected site.
func (n *incidentNormalizer) fromMassive(row *models.MassiveIncidentRow) models.IncidentRecord {
	id := row.ID.String()
	country := firstNonEmpty(row.Country, models.UnknownPlaceholder)
	startTime, _ := ParseTimestamp(row.StartTime, n.loc)

	return models.IncidentRecord{
		ID:              id,
		NetworkID:       massiveNetworkIDPrefix + id,
		StoreName:       massiveStoreNamePrefix + country,
		StoreCode:       models.UnknownPlaceholder,
		Country:         country,
		CrossStreet:     models.UnknownPlaceholder,
		StartTime:       startTime,
		RawStartTime:    row.StartTime,
		DowntimeMinutes: 0,
		LifecycleStage:  models.LifecycleStage(strings.TrimSpace(row.Status)),
		EventType:       models.EventTypeMassiveIncident,
		SiteImpact:      models.SiteImpactMassive,
		ProviderName:    firstNonEmpty(row.ProviderName, models.UnknownPlaceholder),
		Massive:         &models.MassiveDetail{AffectedStores: row.AffectedStores},
	}
}

func downtimeMinutes(v *float64) int {
	if v == nil || math.IsNaN(*v) || *v <= 0 {
		return 0
	}
	if *v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Round(*v))
}

func siteImpact(raw string) models.SiteImpact {
	switch models.SiteImpact(strings.ToUpper(strings.TrimSpace(raw))) {
	case models.SiteImpactPartial:
		return models.SiteImpactPartial
	case models.SiteImpactDegradation:
		return models.SiteImpactDegradation
	case models.SiteImpactMassive:
		return models.SiteImpactMassive
	default:
		return models.SiteImpactTotal
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

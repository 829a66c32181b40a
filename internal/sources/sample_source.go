package sources

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"netops-dashboard/internal/models"
	"netops-dashboard/internal/stores"

	"github.com/rs/zerolog"
)

const (
	sampleOriginFile      = "file"
	sampleOriginGenerated = "generated"
)

// SampleSource provides the offline dataset used whenever a live fetch fails.
//
//go:generate mockgen -source=sample_source.go -destination=./mocks/sample_source_mock.go -package=mocks
type SampleSource interface {
	// Load returns the operator-provided fallback file when one exists, and
	// otherwise a deterministic dataset anchored on now.
	Load(ctx context.Context, now time.Time) (*models.RawSnapshot, error)
}

type sampleSource struct {
	rawSnapshots stores.RawSnapshotStore
	logger       zerolog.Logger
}

func NewSampleSource(rawSnapshots stores.RawSnapshotStore, logger zerolog.Logger) SampleSource {
	return &sampleSource{rawSnapshots: rawSnapshots, logger: logger}
}

func (s *sampleSource) Load(ctx context.Context, now time.Time) (*models.RawSnapshot, error) {
	if s.rawSnapshots != nil {
		raw, err := s.rawSnapshots.LoadFallback(ctx)
		switch {
		case err == nil:
			metricSampleLoadedTotal.WithLabelValues(sampleOriginFile).Inc()
			return raw, nil
		case errors.Is(err, stores.ErrRawSnapshotNotFound):
		case ctx.Err() != nil:
			return nil, ctx.Err()
		default:
			s.logger.Warn().Err(err).Msg("fallback dataset unreadable, using generated sample")
		}
	}

	metricSampleLoadedTotal.WithLabelValues(sampleOriginGenerated).Inc()
	return GenerateSampleSnapshot(now), nil
}

type sampleStore struct {
	country   string
	city      string
	providers [2]string
}

var sampleStores = []sampleStore{
	{"Venezuela", "Caracas", [2]string{"CANTV", "Inter"}},
	{"Venezuela", "Valencia", [2]string{"Inter", "CANTV"}},
	{"Venezuela", "Maracaibo", [2]string{"Movistar", "Digitel"}},
	{"Venezuela", "Barquisimeto", [2]string{"CANTV", "Netuno"}},
	{"Venezuela", "Puerto La Cruz", [2]string{"Digitel", "CANTV"}},
	{"Colombia", "Bogotá", [2]string{"Claro", "ETB"}},
	{"Colombia", "Medellín", [2]string{"Tigo", "Claro"}},
	{"Colombia", "Cali", [2]string{"ETB", "Movistar"}},
	{"Panamá", "Ciudad de Panamá", [2]string{"Cable & Wireless", "Tigo"}},
	{"Panamá", "Colón", [2]string{"Tigo", "Cable & Wireless"}},
	{"República Dominicana", "Santo Domingo", [2]string{"Claro", "Altice"}},
	{"República Dominicana", "Santiago", [2]string{"Altice", "Claro"}},
}

var sampleStages = []string{
	"Resuelta", "Resuelta", "Resuelta", "Resuelta", "Resuelta", "Resuelta",
	"Falso Positivo", "Activa", "En gestión", "En observación", "Intermitencia", "Pendiente por cierre",
}

// GenerateSampleSnapshot builds a deterministic dataset covering the last
// year up to now, so every view has something to show.
func GenerateSampleSnapshot(now time.Time) *models.RawSnapshot {
	rng := rand.New(rand.NewPCG(20240601, 42))
	now = now.UTC()
	raw := &models.RawSnapshot{}

	for i, st := range sampleStores {
		for j := 0; j < 2; j++ {
			n := i*2 + j + 1
			raw.Inventory = append(raw.Inventory, models.InventoryRow{
				NetworkID:        models.FlexibleID(fmt.Sprintf("L_%04d", n)),
				StoreName:        fmt.Sprintf("Tienda %s %d", st.city, j+1),
				StoreCode:        fmt.Sprintf("T-%03d", n),
				CrossStreet:      fmt.Sprintf("Calle %d", 10+n),
				Country:          st.country,
				Wan1ProviderName: st.providers[j%2],
				Wan2ProviderName: st.providers[(j+1)%2],
				DeviceSerial:     fmt.Sprintf("Q2XX-%04d-%04d", 1000+n, 7000+n*3),
				DeviceModel:      "MX68",
			})
		}
	}

	massiveIDs := []int{}
	for i := 0; i < 4; i++ {
		id := 900 + i
		st := sampleStores[rng.IntN(len(sampleStores))]
		status := "Resuelta"
		if i == 0 {
			status = "Activa"
		}
		raw.Massive = append(raw.Massive, models.MassiveIncidentRow{
			ID:             models.FlexibleID(strconv.Itoa(id)),
			StartTime:      now.Add(-time.Duration(rng.IntN(60*24)) * time.Hour).Format(time.RFC3339),
			Status:         status,
			Country:        st.country,
			ProviderName:   st.providers[0],
			AffectedStores: 3 + rng.IntN(20),
		})
		massiveIDs = append(massiveIDs, id)
	}

	for i := 0; i < 240; i++ {
		inv := raw.Inventory[rng.IntN(len(raw.Inventory))]
		start := now.Add(-time.Duration(rng.IntN(365*24*60)) * time.Minute)
		if i < 40 {
			start = now.Add(-time.Duration(rng.IntN(30*24*60)) * time.Minute)
		}
		row := models.FailureRow{
			ID:             models.FlexibleID(strconv.Itoa(1000 + i)),
			NetworkID:      inv.NetworkID,
			StartTime:      start.Format(time.RFC3339),
			LifecycleStage: sampleStages[rng.IntN(len(sampleStages))],
			SiteImpact:     "TOTAL",
			StoreName:      inv.StoreName,
			Country:        inv.Country,
			ProviderName:   inv.Wan1ProviderName,
		}
		if rng.IntN(4) == 0 {
			row.SiteImpact = "PARCIAL"
		}
		if rng.IntN(10) != 0 {
			downtime := float64(5 + rng.IntN(360))
			row.DowntimeMinutes = &downtime
		}
		if rng.IntN(15) == 0 {
			row.Wan1MassiveIncidentID = models.FlexibleID(strconv.Itoa(massiveIDs[rng.IntN(len(massiveIDs))]))
			row.IsMassive = true
		}
		raw.Failures = append(raw.Failures, row)
	}

	for i := 0; i < 30; i++ {
		inv := raw.Inventory[rng.IntN(len(raw.Inventory))]
		status := "Resuelta"
		if i%7 == 0 {
			status = "En observación"
		}
		raw.Degradations = append(raw.Degradations, models.DegradationRow{
			ID:           models.FlexibleID(fmt.Sprintf("D-%d", 500+i)),
			NetworkID:    inv.NetworkID,
			StartTime:    now.Add(-time.Duration(rng.IntN(90*24)) * time.Hour).Format(time.RFC3339),
			Status:       status,
			Description:  "Latencia elevada en enlace principal",
			StoreName:    inv.StoreName,
			Country:      inv.Country,
			ProviderName: inv.Wan1ProviderName,
		})
	}

	return raw
}

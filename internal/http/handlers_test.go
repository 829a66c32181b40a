package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"netops-dashboard/internal/aggregators"
	aggmocks "netops-dashboard/internal/aggregators/mocks"
	"netops-dashboard/internal/events"
	"netops-dashboard/internal/incidents"
	incmocks "netops-dashboard/internal/incidents/mocks"
	"netops-dashboard/internal/models"
	"netops-dashboard/internal/shared/loggers"
	"netops-dashboard/internal/shared/svcerrors"
	"netops-dashboard/internal/stores"
	storemocks "netops-dashboard/internal/stores/mocks"
	streammocks "netops-dashboard/internal/streams/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	aggregation *aggmocks.MockAggregationService
	incidents   *incmocks.MockMassiveIncidentService
	producer    *streammocks.MockRefreshTriggerProducer
	archive     *storemocks.MockRawSnapshotStore
	handler     http.Handler
}

var fixtureNow = time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &routerFixture{
		aggregation: aggmocks.NewMockAggregationService(ctrl),
		incidents:   incmocks.NewMockMassiveIncidentService(ctrl),
		producer:    streammocks.NewMockRefreshTriggerProducer(ctrl),
		archive:     storemocks.NewMockRawSnapshotStore(ctrl),
	}
	logger, err := loggers.New("error")
	require.NoError(t, err)
	f.handler = NewRouter(RouterDeps{
		AggregationService: f.aggregation,
		IncidentService:    f.incidents,
		TriggerProducer:    f.producer,
		RawSnapshots:       f.archive,
		Location:           time.UTC,
		Clock:              func() time.Time { return fixtureNow },
	}, logger)
	return f
}

func (f *routerFixture) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestComparativeHandler(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	rollup := &aggregators.ComparativeRollup{
		Granularity: models.GranularityWeek,
		DeviceCount: 1200,
		Current:     aggregators.PeriodMetrics{Incidents: 4, DowntimeMinutes: 135},
		Previous:    aggregators.PeriodMetrics{Incidents: 2},
		IncidentGrowth: aggregators.Growth{
			State:   aggregators.GrowthChange,
			Percent: 100,
		},
	}
	f.aggregation.EXPECT().Comparative(gomock.Any(), models.GranularityWeek).Return(rollup, nil)

	rr := f.do(http.MethodGet, "/api/v1/views/comparative?granularity=WEEK")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var resp struct {
		View    aggregators.ComparativeRollup `json:"view"`
		Display struct {
			Incidents struct {
				Current string `json:"current"`
			} `json:"incidents"`
			Downtime struct {
				Current string `json:"current"`
			} `json:"downtime"`
			Devices string `json:"devices"`
		} `json:"display"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.View.Current.Incidents)
	assert.Equal(t, "4", resp.Display.Incidents.Current)
	assert.Equal(t, "2h 15m", resp.Display.Downtime.Current)
	assert.Equal(t, "1,200", resp.Display.Devices)
}

func TestComparativeHandler_ServiceError(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.aggregation.EXPECT().Comparative(gomock.Any(), models.Granularity("hour")).
		Return(nil, svcerrors.NewInvalidArgumentError("AGG_1000", "invalid granularity", nil))

	rr := f.do(http.MethodGet, "/api/v1/views/comparative?granularity=hour")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "AGG_1000", decodeError(t, rr).ErrorCode)
}

func TestSLAHistoryHandlers_QueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		setup      func(f *routerFixture)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "history with months",
			target: "/api/v1/views/sla-history?months=6",
			setup: func(f *routerFixture) {
				f.aggregation.EXPECT().SLAHistory(gomock.Any(), 6).Return(&aggregators.SLAHistory{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "history with non-numeric months",
			target:     "/api/v1/views/sla-history?months=six",
			setup:      func(f *routerFixture) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   codeInvalidQueryParam,
		},
		{
			name:   "breakdown reads month from path",
			target: "/api/v1/views/sla-history/2026-02/breakdown?months=12&limit=5",
			setup: func(f *routerFixture) {
				f.aggregation.EXPECT().SLABreakdown(gomock.Any(), 12, "2026-02", 5).
					Return(&aggregators.SLABreakdown{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "breakdown of unknown month",
			target: "/api/v1/views/sla-history/1999-01/breakdown",
			setup: func(f *routerFixture) {
				f.aggregation.EXPECT().SLABreakdown(gomock.Any(), 0, "1999-01", 0).
					Return(nil, svcerrors.NewNotFoundError("AGG_1003", "month outside history", nil))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "AGG_1003",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newRouterFixture(t)
			tt.setup(f)

			rr := f.do(http.MethodGet, tt.target)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rr).ErrorCode)
			}
		})
	}
}

func TestHeatmapAndWeekdayHandlers(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.aggregation.EXPECT().Heatmap(gomock.Any()).Return(&aggregators.Heatmap{CriticalDays: 2}, nil)
	f.aggregation.EXPECT().Weekday(gomock.Any()).Return(&aggregators.WeekdayDistribution{}, nil)

	rr := f.do(http.MethodGet, "/api/v1/views/heatmap")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"criticalDays":2`)

	rr = f.do(http.MethodGet, "/api/v1/views/weekday")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"display"`)
}

func TestTrendsHandler_Series(t *testing.T) {
	t.Parallel()

	t.Run("parses repeated series", func(t *testing.T) {
		t.Parallel()

		f := newRouterFixture(t)
		want := []models.ProviderKey{
			models.NewProviderKey("Claro", "Colombia"),
			models.NewProviderKey("Tigo", "Guatemala"),
		}
		f.aggregation.EXPECT().Trends(gomock.Any(), models.GranularityMonth, want).
			Return(&aggregators.Trends{Granularity: models.GranularityMonth}, nil)

		rr := f.do(http.MethodGet,
			"/api/v1/views/trends?granularity=month&series=CLARO%7CCOLOMBIA&series=TIGO%7CGUATEMALA")

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("rejects malformed series", func(t *testing.T) {
		t.Parallel()

		f := newRouterFixture(t)

		rr := f.do(http.MethodGet, "/api/v1/views/trends?series=CLARO")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, codeInvalidProviderKey, decodeError(t, rr).ErrorCode)
	})
}

func TestDrilldownHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		wantReq    *aggregators.DrilldownRequest
		wantStatus int
	}{
		{
			name:   "heatmap cell",
			target: "/api/v1/drilldown?view=heatmap&group=CLARO&bucket=2026-03-16",
			wantReq: &aggregators.DrilldownRequest{
				Cell: aggregators.CellKey{View: aggregators.ViewHeatmap, Group: "CLARO", Bucket: "2026-03-16"},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "trends cell with provider key",
			target: "/api/v1/drilldown?view=trends&provider=claro&country=colombia&bucket=2026-03&granularity=month",
			wantReq: &aggregators.DrilldownRequest{
				Cell: aggregators.CellKey{
					View:     aggregators.ViewTrends,
					Provider: models.NewProviderKey("claro", "colombia"),
					Bucket:   "2026-03",
				},
				Granularity: models.GranularityMonth,
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "sla history with months",
			target: "/api/v1/drilldown?view=sla_history&bucket=2026-01&months=3",
			wantReq: &aggregators.DrilldownRequest{
				Cell:   aggregators.CellKey{View: aggregators.ViewSLAHistory, Bucket: "2026-01"},
				Months: 3,
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown view",
			target:     "/api/v1/drilldown?view=pie",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing view",
			target:     "/api/v1/drilldown",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newRouterFixture(t)
			if tt.wantReq != nil {
				f.aggregation.EXPECT().Drilldown(gomock.Any(), *tt.wantReq).
					Return(&aggregators.DrilldownResult{Cell: tt.wantReq.Cell, Records: []*models.IncidentRecord{}}, nil)
			}

			rr := f.do(http.MethodGet, tt.target)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestIncidentsAndDevicesHandlers(t *testing.T) {
	t.Parallel()

	t.Run("incident filter", func(t *testing.T) {
		t.Parallel()

		f := newRouterFixture(t)
		f.aggregation.EXPECT().Incidents(gomock.Any(), aggregators.IncidentFilter{
			Type:       models.EventTypeMassiveIncident,
			ActiveOnly: true,
			Limit:      20,
		}).Return([]*models.IncidentRecord{{ID: "m-1"}}, nil)

		rr := f.do(http.MethodGet, "/api/v1/incidents?type=massive_incident&active=true&limit=20")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"m-1"`)
	})

	t.Run("invalid active flag", func(t *testing.T) {
		t.Parallel()

		f := newRouterFixture(t)

		rr := f.do(http.MethodGet, "/api/v1/incidents?active=maybe")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("device filter", func(t *testing.T) {
		t.Parallel()

		f := newRouterFixture(t)
		f.aggregation.EXPECT().Devices(gomock.Any(), aggregators.DeviceFilter{Country: "Panama", Provider: "Tigo"}).
			Return([]models.InventoryRow{}, nil)

		rr := f.do(http.MethodGet, "/api/v1/devices?country=Panama&provider=Tigo")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]\n", rr.Body.String())
	})
}

func TestStatusHandler(t *testing.T) {
	t.Parallel()

	t.Run("not ready", func(t *testing.T) {
		t.Parallel()

		f := newRouterFixture(t)
		f.aggregation.EXPECT().Status(gomock.Any()).Return(&aggregators.DashboardStatus{})

		rr := f.do(http.MethodGet, "/api/v1/status")

		require.Equal(t, http.StatusOK, rr.Code)
		var resp StatusResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.False(t, resp.Status.Ready)
		assert.Nil(t, resp.Display)
	})

	t.Run("ready", func(t *testing.T) {
		t.Parallel()

		f := newRouterFixture(t)
		f.aggregation.EXPECT().Status(gomock.Any()).Return(&aggregators.DashboardStatus{
			Ready: true,
			Snapshot: &models.SnapshotInfo{
				Source:      models.SnapshotSourceLive,
				FetchedAt:   fixtureNow.Add(-5 * time.Minute),
				RecordCount: 42,
			},
		})

		rr := f.do(http.MethodGet, "/api/v1/status")

		require.Equal(t, http.StatusOK, rr.Code)
		var resp StatusResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.NotNil(t, resp.Display)
		assert.Equal(t, "hace 5 min", resp.Display.UpdatedAt)
		assert.Equal(t, "42", resp.Display.Records)
	})
}

func TestLatestArchiveHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		raw        *models.RawSnapshot
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "archived payload",
			raw:        &models.RawSnapshot{Inventory: []models.InventoryRow{}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "nothing archived",
			err:        stores.ErrRawSnapshotNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   codeArchiveNotFound,
		},
		{
			name:       "unreadable archive",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantCode:   codeInternalArchiveUnreadable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newRouterFixture(t)
			f.archive.EXPECT().LoadLatest(gomock.Any()).Return(tt.raw, tt.err)

			rr := f.do(http.MethodGet, "/api/v1/snapshots/latest")

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rr).ErrorCode)
			}
		})
	}
}

func TestRefreshHandler(t *testing.T) {
	t.Parallel()

	t.Run("queued", func(t *testing.T) {
		t.Parallel()

		f := newRouterFixture(t)
		f.producer.EXPECT().Produce(gomock.Any(), events.RefreshReasonManual, "").
			Return(&events.RefreshTriggeredEvent{TriggerID: "01TRIGGER"}, true, nil)

		rr := f.do(http.MethodPost, "/api/v1/refresh")

		require.Equal(t, http.StatusAccepted, rr.Code)
		var resp RefreshResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "01TRIGGER", resp.TriggerID)
		assert.True(t, resp.Coalesced)
	})

	t.Run("queue closed", func(t *testing.T) {
		t.Parallel()

		f := newRouterFixture(t)
		f.producer.EXPECT().Produce(gomock.Any(), events.RefreshReasonManual, "").
			Return(nil, false, assert.AnError)

		rr := f.do(http.MethodPost, "/api/v1/refresh")

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, codeUnavailableRefreshNotQueued, decodeError(t, rr).ErrorCode)
	})

	t.Run("GET is not routed", func(t *testing.T) {
		t.Parallel()

		f := newRouterFixture(t)

		rr := f.do(http.MethodGet, "/api/v1/refresh")

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}

func TestCloseMassiveIncidentHandler(t *testing.T) {
	t.Parallel()

	t.Run("closed", func(t *testing.T) {
		t.Parallel()

		f := newRouterFixture(t)
		f.incidents.EXPECT().Close(gomock.Any(), "m-7").
			Return(&incidents.CloseResult{IncidentID: "m-7", TriggerID: "01T"}, nil)

		rr := f.do(http.MethodPost, "/api/v1/massive-incidents/m-7/close")

		require.Equal(t, http.StatusAccepted, rr.Code)
		assert.True(t, strings.Contains(rr.Body.String(), `"incidentId":"m-7"`))
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		f := newRouterFixture(t)
		f.incidents.EXPECT().Close(gomock.Any(), "m-404").
			Return(nil, svcerrors.NewNotFoundError("INC_1001", "massive incident not found", nil))

		rr := f.do(http.MethodPost, "/api/v1/massive-incidents/m-404/close")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "INC_1001", decodeError(t, rr).ErrorCode)
	})
}

package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"netops-dashboard/internal/aggregators"
	"netops-dashboard/internal/events"
	internalhttp "netops-dashboard/internal/http"
	"netops-dashboard/internal/incidents"
	"netops-dashboard/internal/normalizers"
	"netops-dashboard/internal/notifiers"
	"netops-dashboard/internal/realtime"
	"netops-dashboard/internal/refreshers"
	"netops-dashboard/internal/shared/configs"
	"netops-dashboard/internal/shared/filestorages"
	"netops-dashboard/internal/shared/loggers"
	"netops-dashboard/internal/shared/memocaches"
	"netops-dashboard/internal/sources"
	"netops-dashboard/internal/stores"
	"netops-dashboard/internal/streams"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	cache                  memocaches.MemoCache
	hub                    notifiers.Hub
	refreshTriggerQueue    *streams.PartitionedQueue[events.RefreshTriggeredEvent]
	refreshTriggerProducer streams.RefreshTriggerProducer
	refreshTriggerConsumer streams.RefreshTriggerConsumer
	refreshPoller          streams.RefreshPoller
	realtimeSubscriber     realtime.Subscriber
	backgroundCtx          context.Context
	backgroundCancel       context.CancelFunc
	hubDone                chan struct{}
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "netops-dashboard").
		Logger()

	loc, err := time.LoadLocation(config.Aggregation.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", config.Aggregation.Timezone, err)
	}

	// Initialize blob store for archived payloads
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	rawSnapshotStore := stores.NewRawSnapshotStore(fileStorage)
	snapshotStore := stores.NewSnapshotStore()

	// Initialize aggregation service
	cache, err := memocaches.New(memocaches.Config{
		MaxEntries: config.Cache.MaxEntries,
		TTL:        time.Duration(config.Cache.TTL) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}
	aggregationService := aggregators.NewAggregationService(snapshotStore, cache, thresholdsFromConfig(config.Aggregation), loc, time.Now)

	// Initialize refresh pipeline
	hub := notifiers.NewHub(appLogger.With().Str(loggers.FieldComponent, "hub").Logger())
	backendClient := sources.NewBackendClient(config.Backend)
	sampleSource := sources.NewSampleSource(rawSnapshotStore, appLogger.With().Str(loggers.FieldComponent, "samples").Logger())
	normalizer := normalizers.NewIncidentNormalizer(loc, appLogger.With().Str(loggers.FieldComponent, "normalizer").Logger())
	refreshService := refreshers.NewRefreshService(backendClient, sampleSource, normalizer, snapshotStore, rawSnapshotStore, hub, time.Now)

	refreshTriggerQueue := streams.NewPartitionedQueue[events.RefreshTriggeredEvent](config.Refresh.Workers, config.Refresh.QueueBuffer)
	refreshTriggerProducer := streams.NewRefreshTriggerProducer(refreshTriggerQueue)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	refreshTriggerConsumer := streams.NewRefreshTriggerConsumer(refreshTriggerQueue, refreshService, consumerLogger)
	pollerLogger := appLogger.With().Str(loggers.FieldComponent, "poller").Logger()
	refreshPoller := streams.NewRefreshPoller(refreshTriggerProducer, time.Duration(config.Refresh.PollInterval)*time.Second, pollerLogger)

	var realtimeSubscriber realtime.Subscriber
	if config.Realtime.Enabled {
		realtimeLogger := appLogger.With().Str(loggers.FieldComponent, "realtime").Logger()
		realtimeSubscriber, err = realtime.NewSubscriber(config.Realtime, config.Backend.APIKey, refreshTriggerProducer, realtimeLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize realtime subscriber: %w", err)
		}
	}

	incidentService := incidents.NewMassiveIncidentService(backendClient, refreshTriggerProducer)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(internalhttp.RouterDeps{
		AggregationService: aggregationService,
		IncidentService:    incidentService,
		TriggerProducer:    refreshTriggerProducer,
		RawSnapshots:       rawSnapshotStore,
		Hub:                hub,
		Location:           loc,
		Clock:              time.Now,
	}, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:                 config,
		appLogger:              appLogger,
		server:                 server,
		cache:                  cache,
		hub:                    hub,
		refreshTriggerQueue:    refreshTriggerQueue,
		refreshTriggerProducer: refreshTriggerProducer,
		refreshTriggerConsumer: refreshTriggerConsumer,
		refreshPoller:          refreshPoller,
		realtimeSubscriber:     realtimeSubscriber,
	}, nil
}

func thresholdsFromConfig(cfg configs.AggregationConfig) aggregators.Thresholds {
	t := aggregators.DefaultThresholds()
	if cfg.HeatmapFallbackMinutes > 0 {
		t.HeatmapFallbackMinutes = cfg.HeatmapFallbackMinutes
	}
	if cfg.CriticalDayMinutes > 0 {
		t.CriticalDayMinutes = cfg.CriticalDayMinutes
	}
	if cfg.SLATarget > 0 {
		t.SLATarget = cfg.SLATarget
	}
	if cfg.SLAWarning > 0 {
		t.SLAWarning = cfg.SLAWarning
	}
	if cfg.ErrorBudgetRatio > 0 {
		t.ErrorBudgetRatio = cfg.ErrorBudgetRatio
	}
	if cfg.RankingLimit > 0 {
		t.RankingLimit = cfg.RankingLimit
	}
	return t
}

// Start starts the background pipeline, queues the startup refresh and then
// serves HTTP in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting netops-dashboard service on port %d (log_level=%s, file_storage_root_dir=%s, realtime=%t)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.realtimeSubscriber != nil)

	// start background workers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.hubDone = make(chan struct{})
	go func() {
		defer close(app.hubDone)
		app.hub.Run(app.backgroundCtx)
	}()
	app.refreshTriggerConsumer.Start(app.backgroundCtx)
	if _, _, err := app.refreshTriggerProducer.Produce(app.backgroundCtx, events.RefreshReasonStartup, ""); err != nil {
		app.appLogger.Error().Err(err).Msg("failed to queue startup refresh")
	}
	app.refreshPoller.Start(app.backgroundCtx)
	if app.realtimeSubscriber != nil {
		app.realtimeSubscriber.Start(app.backgroundCtx)
	}

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Stop trigger sources before the queue closes
	if app.realtimeSubscriber != nil {
		app.realtimeSubscriber.Stop()
	}
	app.refreshPoller.Stop()

	// 3) Cancel background workers
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background workers cancelled")
	}

	// 4) Wait for background workers to finish
	app.refreshTriggerConsumer.Stop()
	app.refreshTriggerQueue.Close()
	if app.hubDone != nil {
		<-app.hubDone
	}
	app.cache.Close()
	app.appLogger.Info().Msg("Background workers stopped")

	return nil
}

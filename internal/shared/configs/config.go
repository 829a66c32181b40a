package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Backend     BackendConfig     `mapstructure:"backend" validate:"required"`
	Refresh     RefreshConfig     `mapstructure:"refresh" validate:"required"`
	Realtime    RealtimeConfig    `mapstructure:"realtime"`
	Aggregation AggregationConfig `mapstructure:"aggregation" validate:"required"`
	Cache       CacheConfig       `mapstructure:"cache" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// BackendConfig points at the managed Postgres backend's REST interface.
type BackendConfig struct {
	BaseURL           string `mapstructure:"base_url" validate:"required,url"`
	APIKey            string `mapstructure:"api_key"`
	Timeout           int    `mapstructure:"timeout" validate:"required,min=1"` // seconds
	FailuresTable     string `mapstructure:"failures_table" validate:"required"`
	DegradationsTable string `mapstructure:"degradations_table" validate:"required"`
	MassiveTable      string `mapstructure:"massive_table" validate:"required"`
	InventoryTable    string `mapstructure:"inventory_table" validate:"required"`
	CloseMassiveRPC   string `mapstructure:"close_massive_rpc" validate:"required"`
}

// RefreshConfig controls snapshot refresh triggers and workers.
type RefreshConfig struct {
	PollInterval int `mapstructure:"poll_interval" validate:"required,min=1"` // seconds
	Workers      int `mapstructure:"workers" validate:"required,min=1,max=16"`
	QueueBuffer  int `mapstructure:"queue_buffer" validate:"required,min=1"`
}

// RealtimeConfig controls the backend change-notification subscription.
type RealtimeConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	URL               string `mapstructure:"url" validate:"required_if=Enabled true"`
	Table             string `mapstructure:"table" validate:"required_if=Enabled true"`
	HeartbeatInterval int    `mapstructure:"heartbeat_interval" validate:"min=0"` // seconds
	ReconnectDelay    int    `mapstructure:"reconnect_delay" validate:"min=0"`    // seconds
}

// AggregationConfig holds the dashboard location and threshold overrides.
type AggregationConfig struct {
	Timezone               string  `mapstructure:"timezone" validate:"required,timezone"`
	HeatmapFallbackMinutes int     `mapstructure:"heatmap_fallback_minutes" validate:"min=0"`
	CriticalDayMinutes     int     `mapstructure:"critical_day_minutes" validate:"min=0"`
	SLATarget              float64 `mapstructure:"sla_target" validate:"gt=0,lte=100"`
	SLAWarning             float64 `mapstructure:"sla_warning" validate:"gtefield=SLATarget,lte=100"`
	ErrorBudgetRatio       float64 `mapstructure:"error_budget_ratio" validate:"gt=0,lt=1"`
	RankingLimit           int     `mapstructure:"ranking_limit" validate:"min=1"`
}

// CacheConfig sizes the in-process view memoization cache.
type CacheConfig struct {
	MaxEntries int64 `mapstructure:"max_entries" validate:"required,min=1"`
	TTL        int   `mapstructure:"ttl" validate:"min=0"` // seconds, 0 = no expiry
}

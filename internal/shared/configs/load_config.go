package configs

import (
	"fmt"
	"strings"

	"netops-dashboard/internal/shared/validators"

	"github.com/spf13/viper"
)

const envPrefix = "NETOPS"

// LoadConfig reads configuration from file and validates it.
// Every key can be overridden from the environment, e.g. NETOPS_BACKEND_API_KEY.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	// Read from file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend.timeout", 10)
	v.SetDefault("backend.failures_table", "network_failures_jj")
	v.SetDefault("backend.degradations_table", "network_degradations_jj")
	v.SetDefault("backend.massive_table", "massive_incidents_jj")
	v.SetDefault("backend.inventory_table", "devices_inventory_jj")
	v.SetDefault("backend.close_massive_rpc", "close_massive_incident_jj")

	v.SetDefault("refresh.poll_interval", 60)
	v.SetDefault("refresh.workers", 2)
	v.SetDefault("refresh.queue_buffer", 16)

	v.SetDefault("realtime.table", "devices_inventory_jj")
	v.SetDefault("realtime.heartbeat_interval", 30)
	v.SetDefault("realtime.reconnect_delay", 5)

	v.SetDefault("aggregation.timezone", "Local")
	v.SetDefault("aggregation.heatmap_fallback_minutes", 60)
	v.SetDefault("aggregation.critical_day_minutes", 500)
	v.SetDefault("aggregation.sla_target", 99.5)
	v.SetDefault("aggregation.sla_warning", 99.8)
	v.SetDefault("aggregation.error_budget_ratio", 0.005)
	v.SetDefault("aggregation.ranking_limit", 3)

	v.SetDefault("cache.max_entries", 512)
	v.SetDefault("cache.ttl", 0)
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "server.port")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Server.Port" -> "server.port")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			fieldPath := strings.ToLower(strings.Join(parts[1:], "."))
			field = fieldPath
		}
	}

	var msg string
	switch tag {
	case "required", "required_if":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}

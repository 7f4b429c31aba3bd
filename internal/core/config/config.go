package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// RedisURL is the connection URL for the Redis instance backing the
	// fallback event log and priority snapshots. Empty disables persistence.
	RedisURL string `mapstructure:"REDIS_URL"`

	// Dispatch holds orchestration timing configuration.
	Dispatch DispatchConfig `mapstructure:",squash"`

	// Fallback holds the default fallback routing configuration.
	Fallback FallbackConfig `mapstructure:",squash"`

	// Carriers holds the per-carrier gateway configuration.
	Carriers CarriersConfig `mapstructure:"-"`
}

// DispatchConfig tunes carrier call timeouts and the circuit retry window.
type DispatchConfig struct {
	// QuoteTimeoutSeconds is the per-carrier timeout for a single quote call.
	QuoteTimeoutSeconds int `mapstructure:"QUOTE_TIMEOUT_SECONDS" default:"10"`
	// CallTimeoutSeconds is the timeout for label, tracking and pickup calls.
	CallTimeoutSeconds int `mapstructure:"CALL_TIMEOUT_SECONDS" default:"30"`
	// RetryAfterMinutes is how long a Down carrier stays blocked before one
	// trial call is allowed. Zero keeps Down carriers blocked until restart.
	RetryAfterMinutes int `mapstructure:"HEALTH_RETRY_AFTER_MINUTES" default:"5"`
}

// FallbackConfig holds the operator defaults for fallback routing.
type FallbackConfig struct {
	// DefaultPriority is a comma-separated carrier list used as the wildcard
	// route priority when no route-specific list is configured.
	DefaultPriority string `mapstructure:"FALLBACK_DEFAULT_PRIORITY"`
	// EventLogSize caps how many fallback events are retained per route.
	EventLogSize int `mapstructure:"FALLBACK_EVENT_LOG_SIZE" default:"500"`
}

// CarriersConfig holds the configured carrier gateways keyed by carrier
// identifier. A carrier absent from the map is simply not registered.
type CarriersConfig map[string]CarrierGatewayConfig

// CarrierGatewayConfig holds one carrier's REST gateway settings.
type CarrierGatewayConfig struct {
	// URL is the base URL of the carrier gateway.
	URL string
	// APIKey authenticates requests to the gateway.
	APIKey string
}

// Carrier gateway env keys are bound by hand because the same struct type
// repeats per carrier and viper's squash cannot prefix it.
var carrierEnvKeys = []struct {
	name   string
	urlKey string
	apiKey string
}{
	{"dhl", "DHL_GATEWAY_URL", "DHL_API_KEY"},
	{"fedex", "FEDEX_GATEWAY_URL", "FEDEX_API_KEY"},
	{"ups", "UPS_GATEWAY_URL", "UPS_API_KEY"},
	{"servientrega", "SERVIENTREGA_GATEWAY_URL", "SERVIENTREGA_API_KEY"},
	{"coordinadora", "COORDINADORA_GATEWAY_URL", "COORDINADORA_API_KEY"},
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	config.Carriers = loadCarrierGateways(v)

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// loadCarrierGateways reads the per-carrier env keys, keeping only carriers
// with a configured URL.
func loadCarrierGateways(v *viper.Viper) CarriersConfig {
	carriers := make(CarriersConfig)

	for _, entry := range carrierEnvKeys {
		v.BindEnv(entry.urlKey)
		v.BindEnv(entry.apiKey)

		url := v.GetString(entry.urlKey)
		if url == "" {
			continue
		}

		carriers[entry.name] = CarrierGatewayConfig{
			URL:    url,
			APIKey: v.GetString(entry.apiKey),
		}
	}

	return carriers
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" && key != "-" {
			v.BindEnv(key)
		}

		if key != "" && key != "-" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}

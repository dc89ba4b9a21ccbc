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

	// ReportTimezone, when set, overrides per-marketplace timezone resolution
	// for every retrieval (IANA name, e.g. "America/Los_Angeles").
	ReportTimezone string `mapstructure:"REPORT_TIMEZONE"`

	// RatesFile is the path of the JSON file holding the per-day currency
	// conversion table to the reporting currency.
	RatesFile string `mapstructure:"RATES_FILE" required:"true"`
	// RedisURL enables the cached rate repository when non-empty.
	RedisURL string `mapstructure:"REDIS_URL"`
	// RateCacheTTLSeconds is how long cached rate lookups stay valid.
	RateCacheTTLSeconds int `mapstructure:"RATE_CACHE_TTL_SECONDS" default:"3600"`

	// Throttle holds the provider request pacing settings.
	Throttle ThrottleConfig `mapstructure:",squash"`

	// SellingPartner holds the per-region provider credentials.
	SellingPartner SellingPartnerConfig `mapstructure:",squash"`
}

// ThrottleConfig holds the request pacing parameters applied per region.
// The defaults mirror the provider's published per-seller quota: one request
// every 200ms with a burst of 15, then a 30s cooldown.
type ThrottleConfig struct {
	// RequestPauseMs is the steady interval between paced requests, in milliseconds.
	RequestPauseMs int `mapstructure:"REQUEST_PAUSE_MS" default:"200"`
	// RequestBurstSize is the number of requests allowed in a burst.
	RequestBurstSize int `mapstructure:"REQUEST_BURST_SIZE" default:"15"`
	// BurstPauseMs is the cooldown after a burst is exhausted, in milliseconds.
	BurstPauseMs int `mapstructure:"BURST_PAUSE_MS" default:"30000"`
}

// SellingPartnerConfig holds the credentials for the provider's two
// credential regions. A region with an empty access token is treated as
// not configured; retrievals for its marketplaces fail with a
// configuration error.
type SellingPartnerConfig struct {
	// NAEndpoint is the API endpoint for North America marketplaces.
	NAEndpoint string `mapstructure:"SP_NA_ENDPOINT" default:"https://sellingpartnerapi-na.amazon.com"`
	// NAAccessToken is the access token for North America marketplaces.
	NAAccessToken string `mapstructure:"SP_NA_ACCESS_TOKEN"`
	// EUEndpoint is the API endpoint for Europe marketplaces.
	EUEndpoint string `mapstructure:"SP_EU_ENDPOINT" default:"https://sellingpartnerapi-eu.amazon.com"`
	// EUAccessToken is the access token for Europe marketplaces.
	EUAccessToken string `mapstructure:"SP_EU_ACCESS_TOKEN"`
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

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
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

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
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

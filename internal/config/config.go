package config

import (
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

type Config struct {
	App      *AppConfig      `yaml:"app"`
	Pricing  *PricingConfig  `yaml:"pricing"`
	Matching *MatchingConfig `yaml:"matching"`
	Log      *LogConfig      `yaml:"log"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Environment string `yaml:"environment"`
	Timezone    string `yaml:"timezone"`
	Currency    string `yaml:"currency"`
}

// PricingConfig holds the surge increments and billing rates. Values are
// decimals so a misconfigured float never leaks rounding drift into money.
type PricingConfig struct {
	UrgentSurge   decimal.Decimal `yaml:"urgent_surge"`
	CriticalSurge decimal.Decimal `yaml:"critical_surge"`
	NightSurge    decimal.Decimal `yaml:"night_surge"`
	WeekendSurge  decimal.Decimal `yaml:"weekend_surge"`
	HolidaySurge  decimal.Decimal `yaml:"holiday_surge"`

	PlatformFeeRatePercent       decimal.Decimal `yaml:"platform_fee_rate_percent"`
	VATRatePercent               decimal.Decimal `yaml:"vat_rate_percent"`
	ContingencyBufferRatePercent decimal.Decimal `yaml:"contingency_buffer_rate_percent"`
}

type MatchingConfig struct {
	DefaultTravelRadiusMiles float64 `yaml:"default_travel_radius_miles"`
	RankingParallelism       int     `yaml:"ranking_parallelism"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
	Caller bool   `yaml:"caller"`
	Colors bool   `yaml:"colors"`
}

func Load() (*Config, error) {
	config := &Config{
		App:      loadAppConfig(),
		Pricing:  loadPricingConfig(),
		Matching: loadMatchingConfig(),
		Log:      loadLogConfig(),
	}

	return config, nil
}

func loadAppConfig() *AppConfig {
	return &AppConfig{
		Name:        getEnv("APP_NAME", "GoStaff"),
		Version:     getEnv("APP_VERSION", "1.0.0"),
		Environment: getEnv("APP_ENV", "development"),
		Timezone:    getEnv("APP_TIMEZONE", "UTC"),
		Currency:    getEnv("APP_CURRENCY", "USD"),
	}
}

func loadPricingConfig() *PricingConfig {
	return &PricingConfig{
		UrgentSurge:   getEnvAsDecimal("PRICING_URGENT_SURGE", "0.30"),
		CriticalSurge: getEnvAsDecimal("PRICING_CRITICAL_SURGE", "0.60"),
		NightSurge:    getEnvAsDecimal("PRICING_NIGHT_SURGE", "0.20"),
		WeekendSurge:  getEnvAsDecimal("PRICING_WEEKEND_SURGE", "0.15"),
		HolidaySurge:  getEnvAsDecimal("PRICING_HOLIDAY_SURGE", "0.50"),

		PlatformFeeRatePercent:       getEnvAsDecimal("PRICING_PLATFORM_FEE_RATE", "35"),
		VATRatePercent:               getEnvAsDecimal("PRICING_VAT_RATE", "18"),
		ContingencyBufferRatePercent: getEnvAsDecimal("PRICING_CONTINGENCY_BUFFER_RATE", "5"),
	}
}

func loadMatchingConfig() *MatchingConfig {
	return &MatchingConfig{
		DefaultTravelRadiusMiles: getEnvAsFloat("MATCHING_DEFAULT_TRAVEL_RADIUS_MILES", 50.0),
		RankingParallelism:       getEnvAsInt("MATCHING_RANKING_PARALLELISM", 1),
	}
}

func loadLogConfig() *LogConfig {
	return &LogConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "text"),
		Output: getEnv("LOG_OUTPUT", "stdout"),
		Caller: getEnvAsBool("LOG_CALLER", false),
		Colors: getEnvAsBool("LOG_COLORS", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsDecimal(key, defaultValue string) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if decimalValue, err := decimal.NewFromString(value); err == nil {
			return decimalValue
		}
	}
	return decimal.RequireFromString(defaultValue)
}

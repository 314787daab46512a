package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr                  string              `mapstructure:"APP_ADDR"`
	DatabaseURL           string              `mapstructure:"DATABASE_URL"`
	FrontendDir           string              `mapstructure:"FRONTEND_DIR"`
	Environment           string              `mapstructure:"APP_ENV"`
	RunMigrations         bool                `mapstructure:"RUN_MIGRATIONS"`
	RunSeed               bool                `mapstructure:"RUN_SEED"`
	MigrationsDir         string              `mapstructure:"MIGRATIONS_DIR"`
	MaxBodyBytes          int64               `mapstructure:"MAX_BODY_BYTES"`
	RateLimitPerMinute    int                 `mapstructure:"RATE_LIMIT_PER_MINUTE"`
	MetricsEnabled        bool                `mapstructure:"METRICS_ENABLED"`
	ShutdownTimeout       time.Duration       `mapstructure:"SHUTDOWN_TIMEOUT"`
	RejectHolidayBoundary bool                `mapstructure:"REJECT_HOLIDAY_BOUNDARY"`
	WeekendDays           string              `mapstructure:"WEEKEND_DAYS"`
	MaxRangeDays          int                 `mapstructure:"MAX_RANGE_DAYS"`
	TrustProxyHeaders     bool                `mapstructure:"TRUST_PROXY_HEADERS"`
	Holidays              map[string][]string `mapstructure:"HOLIDAYS"`
}

// Load reads defaults, then an optional config file, then the environment.
// path may be empty, in which case config.yaml is looked up in the working
// directory and ./config.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("APP_ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("FRONTEND_DIR", "frontend/dist")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("RUN_SEED", true)
	v.SetDefault("MIGRATIONS_DIR", "migrations")
	v.SetDefault("MAX_BODY_BYTES", 1048576)
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 120)
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("REJECT_HOLIDAY_BOUNDARY", false)
	v.SetDefault("WEEKEND_DAYS", "Saturday,Sunday")
	v.SetDefault("MAX_RANGE_DAYS", 366)
	v.SetDefault("TRUST_PROXY_HEADERS", false)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		slog.Info("no config file found, using environment only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Weekend parses WEEKEND_DAYS, a comma separated list of English weekday
// names. An empty value means a seven-day working week.
func (c Config) Weekend() ([]time.Weekday, error) {
	var out []time.Weekday
	for _, raw := range strings.Split(c.WeekendDays, ",") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		day, ok := parseWeekday(name)
		if !ok {
			return nil, fmt.Errorf("WEEKEND_DAYS: unknown weekday %q", name)
		}
		if !slices.Contains(out, day) {
			out = append(out, day)
		}
	}
	return out, nil
}

func parseWeekday(name string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := d.String()
		if strings.EqualFold(name, full) || strings.EqualFold(name, full[:3]) {
			return d, true
		}
	}
	return 0, false
}

// HolidayYears returns the configured years in ascending order.
func (c Config) HolidayYears() ([]int, error) {
	years := make([]int, 0, len(c.Holidays))
	for key := range c.Holidays {
		year, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || year < 1 {
			return nil, fmt.Errorf("HOLIDAYS: invalid year key %q", key)
		}
		years = append(years, year)
	}
	slices.Sort(years)
	return years, nil
}

func (c Config) HolidaysFor(year int) []string {
	return c.Holidays[strconv.Itoa(year)]
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("APP_ADDR is required")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.MaxRangeDays < 1 {
		return fmt.Errorf("MAX_RANGE_DAYS must be at least 1")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	if c.RunSeed && strings.TrimSpace(c.DatabaseURL) != "" && len(c.Holidays) == 0 {
		return fmt.Errorf("HOLIDAYS must be configured when RUN_SEED is true")
	}
	if _, err := c.Weekend(); err != nil {
		return err
	}
	if _, err := c.HolidayYears(); err != nil {
		return err
	}
	return nil
}

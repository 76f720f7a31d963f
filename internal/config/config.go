package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Portal   PortalConfig   `toml:"portal"`
	Checkout CheckoutConfig `toml:"checkout"`
	Stripe   StripeConfig   `toml:"stripe"`
	Redis    RedisConfig    `toml:"redis"`
	Polling  PollingConfig  `toml:"polling"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// PortalConfig настройки сервисов клиентского портала
// Каждый collaborator имеет собственный endpoint и таймаут;
// DefaultTenant используется только фоновым опросом каталога -
// запросные вызовы берут tenant из заголовка X-Tenant-ID
type PortalConfig struct {
	DefaultTenant string `toml:"default_tenant"`

	Catalog     EndpointConfig `toml:"catalog"`
	Campaign    EndpointConfig `toml:"campaign"`
	Settings    EndpointConfig `toml:"settings"`
	Booking     EndpointConfig `toml:"booking"`
	Checkout    EndpointConfig `toml:"checkout"`
	CartTracker EndpointConfig `toml:"cart_tracker"`
}

// EndpointConfig адрес и таймаут одного upstream-сервиса
type EndpointConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// CheckoutConfig настройки оркестратора checkout
// Driver: "portal" - сессии создает портал, "stripe" - напрямую Stripe
type CheckoutConfig struct {
	Driver            string `toml:"driver"`
	SuccessURL        string `toml:"success_url"`
	CancelURL         string `toml:"cancel_url"`
	SessionTTLMinutes int    `toml:"session_ttl_minutes"`
}

// StripeConfig настройки Stripe драйвера
type StripeConfig struct {
	SecretKey string `toml:"secret_key"`
	Currency  string `toml:"currency"`
}

// RedisConfig настройки Redis для хранилища сессий
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// PollingConfig настройки фонового обновления каталога
type PollingConfig struct {
	Enabled         bool `toml:"enabled"`
	IntervalSeconds int  `toml:"interval_seconds"`
}

// Load загружает и валидирует конфигурацию из файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "glow-session-service"
	}
	if c.Checkout.Driver == "" {
		c.Checkout.Driver = "portal"
	}
	if c.Checkout.SessionTTLMinutes == 0 {
		c.Checkout.SessionTTLMinutes = 24 * 60
	}
	if c.Polling.IntervalSeconds == 0 {
		c.Polling.IntervalSeconds = 60
	}

	for _, ep := range []*EndpointConfig{
		&c.Portal.Catalog, &c.Portal.Campaign, &c.Portal.Settings,
		&c.Portal.Booking, &c.Portal.Checkout, &c.Portal.CartTracker,
	} {
		if ep.Timeout == 0 {
			ep.Timeout = 10
		}
	}
}

func (c *Config) validate() error {
	if c.Portal.Catalog.URL == "" {
		return fmt.Errorf("portal.catalog.url is required")
	}
	if c.Portal.Settings.URL == "" {
		return fmt.Errorf("portal.settings.url is required")
	}
	if c.Portal.Booking.URL == "" {
		return fmt.Errorf("portal.booking.url is required")
	}
	switch c.Checkout.Driver {
	case "portal":
		if c.Portal.Checkout.URL == "" {
			return fmt.Errorf("portal.checkout.url is required for checkout driver %q", c.Checkout.Driver)
		}
	case "stripe":
		if c.Stripe.SecretKey == "" {
			return fmt.Errorf("stripe.secret_key is required for checkout driver %q", c.Checkout.Driver)
		}
	default:
		return fmt.Errorf("unknown checkout driver %q", c.Checkout.Driver)
	}
	if c.Checkout.SuccessURL == "" || c.Checkout.CancelURL == "" {
		return fmt.Errorf("checkout.success_url and checkout.cancel_url are required")
	}
	return nil
}

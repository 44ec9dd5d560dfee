package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server captures process level configuration.
type Server struct {
	Addr            string        `env:"PORTFOLIO_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	Carousel  CarouselConfig
	Chat      ChatConfig
	Contact   ContactConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

// CarouselConfig controls the venture carousel autoplay.
type CarouselConfig struct {
	Interval     time.Duration `env:"CAROUSEL_INTERVAL" envDefault:"2s"`
	VisibleItems int           `env:"CAROUSEL_VISIBLE_ITEMS" envDefault:"3"`
}

// ChatConfig configures the Gemini-backed assistant. An empty APIKey puts the
// assistant in offline mode.
type ChatConfig struct {
	APIKey           string        `env:"GEMINI_API_KEY"`
	Model            string        `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	Timeout          time.Duration `env:"CHAT_TIMEOUT" envDefault:"20s"`
	MaxMessageLength int           `env:"CHAT_MAX_MESSAGE_LENGTH" envDefault:"2000"`
	FailureThreshold int           `env:"CHAT_BREAKER_FAILURES" envDefault:"5"`
	SuccessThreshold int           `env:"CHAT_BREAKER_SUCCESSES" envDefault:"2"`
	BreakerCooldown  time.Duration `env:"CHAT_BREAKER_COOLDOWN" envDefault:"30s"`
}

// ContactConfig configures the contact form relay.
type ContactConfig struct {
	AccessKey string        `env:"CONTACT_ACCESS_KEY"`
	Endpoint  string        `env:"CONTACT_ENDPOINT" envDefault:"https://api.web3forms.com/submit"`
	Timeout   time.Duration `env:"CONTACT_TIMEOUT" envDefault:"10s"`
}

// RedisConfig configures the optional shared rate-limit store. Empty URL means
// in-memory buckets only.
type RedisConfig struct {
	URL          string        `env:"REDIS_URL"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
}

// RateLimitConfig holds per-class request budgets.
type RateLimitConfig struct {
	Disabled      bool          `env:"RATE_LIMIT_DISABLED" envDefault:"false"`
	Window        time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	ContactLimit  int           `env:"RATE_LIMIT_CONTACT" envDefault:"5"`
	ChatLimit     int           `env:"RATE_LIMIT_CHAT" envDefault:"20"`
	CarouselLimit int           `env:"RATE_LIMIT_CAROUSEL" envDefault:"240"`
}

// FromEnv builds a Server config from the process environment.
func FromEnv() (Server, error) {
	return parse(env.Options{})
}

// FromMap builds a Server config from an explicit environment (tests).
func FromMap(environ map[string]string) (Server, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Server, error) {
	var cfg Server
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}

	// API_KEY is the name the hosted deployment has always used.
	if cfg.Chat.APIKey == "" {
		if opts.Environment != nil {
			cfg.Chat.APIKey = opts.Environment["API_KEY"]
		} else {
			cfg.Chat.APIKey = os.Getenv("API_KEY")
		}
	}

	if err := cfg.validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

func (s Server) validate() error {
	if s.Carousel.Interval <= 0 {
		return fmt.Errorf("CAROUSEL_INTERVAL must be positive")
	}
	if s.Carousel.VisibleItems < 1 || s.Carousel.VisibleItems > 3 {
		return fmt.Errorf("CAROUSEL_VISIBLE_ITEMS must be between 1 and 3")
	}
	if s.Chat.MaxMessageLength <= 0 {
		return fmt.Errorf("CHAT_MAX_MESSAGE_LENGTH must be positive")
	}
	return nil
}

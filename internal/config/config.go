package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlenaMolokova/cardvalidator/internal/constants"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddr        string
	DatabaseURI    string
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

type envConfig struct {
	RunAddr        string   `env:"RUN_ADDRESS"`
	Port           string   `env:"PORT"`
	DatabaseURI    string   `env:"DATABASE_URI"`
	AllowedOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
	RateLimitRPS   float64  `env:"RATE_LIMIT_RPS"`
	RateLimitBurst int      `env:"RATE_LIMIT_BURST"`
}

func NewConfig() (*Config, error) {
	return parse(os.Args[1:], env.Options{})
}

// parse applies defaults, then flags, then environment variables.
func parse(args []string, opts env.Options) (*Config, error) {
	cfg := &Config{
		RunAddr:        constants.DefaultRunAddr,
		RateLimitRPS:   constants.DefaultRateLimitRPS,
		RateLimitBurst: constants.DefaultRateLimitBurst,
	}
	origins := constants.DefaultCORSOrigin

	fs := flag.NewFlagSet("cardvalidator", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddr, "a", cfg.RunAddr, "server address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "database URI, empty disables the check log")
	fs.StringVar(&origins, "o", origins, "comma-separated CORS origins")
	fs.Float64Var(&cfg.RateLimitRPS, "l", cfg.RateLimitRPS, "requests per second per client")
	fs.IntVar(&cfg.RateLimitBurst, "b", cfg.RateLimitBurst, "rate limit burst")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	cfg.AllowedOrigins = splitOrigins(origins)

	var e envConfig
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if addr := strings.TrimSpace(e.RunAddr); addr != "" {
		cfg.RunAddr = addr
		log.Printf("RunAddr from env: %q", cfg.RunAddr)
	} else if port := strings.TrimSpace(e.Port); port != "" {
		cfg.RunAddr = ":" + port
		log.Printf("RunAddr from PORT: %q", cfg.RunAddr)
	}

	if uri := strings.TrimSpace(e.DatabaseURI); uri != "" {
		cfg.DatabaseURI = uri
		log.Printf("DatabaseURI from env: using custom value")
	}

	if len(e.AllowedOrigins) > 0 {
		cfg.AllowedOrigins = splitOrigins(strings.Join(e.AllowedOrigins, ","))
	}

	if e.RateLimitRPS > 0 {
		cfg.RateLimitRPS = e.RateLimitRPS
	}
	if e.RateLimitBurst > 0 {
		cfg.RateLimitBurst = e.RateLimitBurst
	}

	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got rps=%v burst=%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	log.Printf("Config loaded: RunAddr=%s, CheckLog=%t, Origins=%v, RateLimit=%v/s burst %d",
		cfg.RunAddr, cfg.DatabaseURI != "", cfg.AllowedOrigins, cfg.RateLimitRPS, cfg.RateLimitBurst)
	return cfg, nil
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

package config

import (
	"Steelcheck/internal/calc/deflection"
	"Steelcheck/internal/calc/factors"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	TLSCert         string
	TLSKey          string
	StaticDir       string
	RateLimit       float64
	RateBurst       int
	ShutdownTimeout time.Duration
	LogLevel        string
	LogFormat       string

	// Calculation defaults, overridable per request.
	GammaM0              float64
	DeflectionLimitRatio float64
}

func Default() Config {
	return Config{
		Addr:                 ":8080",
		StaticDir:            "./static/main",
		RateLimit:            5,
		RateBurst:            10,
		ShutdownTimeout:      5 * time.Second,
		LogLevel:             "INFO",
		LogFormat:            "CONSOLE",
		GammaM0:              factors.GammaM0,
		DeflectionLimitRatio: deflection.DefaultLimitRatio,
	}
}

// Load reads the given .env files (a missing file is not an error) and then
// the process environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, starting from Default.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str("ADDR", &c.Addr)
	str("TLS_CERT", &c.TLSCert)
	str("TLS_KEY", &c.TLSKey)
	str("STATIC_DIR", &c.StaticDir)
	str("LOGGING_LEVEL", &c.LogLevel)
	str("LOGGING_FORMAT", &c.LogFormat)

	var err error
	if c.RateLimit, err = positiveFloat(lookup, "RATE_LIMIT", c.RateLimit); err != nil {
		return Config{}, err
	}
	if c.GammaM0, err = positiveFloat(lookup, "GAMMA_M0", c.GammaM0); err != nil {
		return Config{}, err
	}
	if c.DeflectionLimitRatio, err = positiveFloat(lookup, "DEFLECTION_LIMIT_RATIO", c.DeflectionLimitRatio); err != nil {
		return Config{}, err
	}
	if v, ok := lookup("RATE_BURST"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("RATE_BURST: invalid value %q", v)
		}
		c.RateBurst = n
	}
	if v, ok := lookup("SHUTDOWN_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
		c.ShutdownTimeout = d
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		return Config{}, fmt.Errorf("TLS_CERT and TLS_KEY must be set together")
	}
	return c, nil
}

func positiveFloat(lookup func(string) (string, bool), key string, def float64) (float64, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("%s: invalid value %q", key, v)
	}
	return f, nil
}

func (c Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

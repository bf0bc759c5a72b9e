package config

import "time"

// RateLimitConfig controls the fixed-window limiter applied to the scan
// endpoints. A physical gate scanner produces at most a few requests per
// second, so the defaults are generous; the limiter mainly protects the
// service from a misbehaving client looping on one code.
type RateLimitConfig struct {
	Enabled bool
	Limit   int           // requests allowed per window
	Window  time.Duration // window length
	Prefix  string        // redis key prefix
}

// LoadRateLimitConfig reads the rate limit settings from the environment
// and clamps them to sane values.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: envBool("RATE_LIMIT_ENABLED", true),
		Limit:   envInt("RATE_LIMIT_LIMIT", 120),
		Window:  envDur("RATE_LIMIT_WINDOW", time.Minute),
		Prefix:  envStr("RATE_LIMIT_PREFIX", "gate:rl"),
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return cfg
}

package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"DATABASE_URL", "REDIS_URL", "SIM_SEED", "SIM_MAX_TURNS", "SIM_WORKERS"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.MaxTurns != 200 || cfg.Workers != 1 || cfg.Seed != 0 {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("unexpected redis url %q", cfg.RedisURL)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SIM_SEED", "1234")
	t.Setenv("SIM_MAX_TURNS", "50")
	t.Setenv("SIM_WORKERS", "notanumber")
	t.Setenv("REDIS_URL", "redis://cache:6379/2")

	cfg := Load()
	if cfg.Seed != 1234 || cfg.MaxTurns != 50 {
		t.Errorf("seed=%d maxTurns=%d", cfg.Seed, cfg.MaxTurns)
	}
	if cfg.Workers != 1 {
		t.Errorf("bad SIM_WORKERS should fall back, got %d", cfg.Workers)
	}
	if cfg.RedisURL != "redis://cache:6379/2" {
		t.Errorf("redis url = %q", cfg.RedisURL)
	}
}

package cli

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/daireno/pkg/config"
	"github.com/matzehuels/daireno/pkg/errors"
	"github.com/matzehuels/daireno/pkg/session"
)

func TestServerConfig(t *testing.T) {
	base := config.Default()

	t.Run("no flags keeps config", func(t *testing.T) {
		var opts serveOpts
		cfg, err := opts.serverConfig(base)
		if err != nil {
			t.Fatalf("serverConfig: %v", err)
		}
		if cfg.Server.Addr != base.Server.Addr || cfg.Defaults != base.Defaults {
			t.Errorf("cfg = %+v, want defaults", cfg)
		}
	})

	t.Run("flags override", func(t *testing.T) {
		opts := serveOpts{
			setupFlags:     setupFlags{floors: "4", width: 600},
			addr:           ":9000",
			redisAddr:      "redis:6379",
			allowedOrigins: "https://a.example, https://b.example,",
			sessionTTL:     "2h",
		}
		cfg, err := opts.serverConfig(base)
		if err != nil {
			t.Fatalf("serverConfig: %v", err)
		}
		if cfg.Server.Addr != ":9000" || cfg.Server.RedisAddr != "redis:6379" {
			t.Errorf("server = %+v", cfg.Server)
		}
		if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[1] != "https://b.example" {
			t.Errorf("origins = %v", cfg.Server.AllowedOrigins)
		}
		if cfg.Server.TTL() != 2*time.Hour {
			t.Errorf("ttl = %v, want 2h", cfg.Server.TTL())
		}
		if cfg.Defaults.NormalFloors != 4 || cfg.Diagram.Width != 600 {
			t.Errorf("defaults = %+v width = %v", cfg.Defaults, cfg.Diagram.Width)
		}
	})

	t.Run("bad ttl", func(t *testing.T) {
		opts := serveOpts{sessionTTL: "soon"}
		if _, err := opts.serverConfig(base); !errors.Is(err, errors.ErrCodeInvalidConfig) {
			t.Errorf("error = %v, want INVALID_CONFIG", err)
		}
	})
}

func TestOpenStoreMemory(t *testing.T) {
	store, name, err := openStore(context.Background(), config.Server{})
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	defer store.Close()
	if _, ok := store.(*session.MemoryStore); !ok || name != "memory" {
		t.Errorf("store = %T %q, want memory", store, name)
	}
}

func TestOpenStoreRedisUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, _, err := openStore(ctx, config.Server{RedisAddr: "127.0.0.1:1"}); err == nil {
		t.Error("expected error for unreachable redis")
	}
}

package config

import (
	"testing"
	"time"
)

func TestEnvHelpers(t *testing.T) {
	t.Run("missing vars fall back to defaults", func(t *testing.T) {
		if got := envStr("RHB_TEST_UNSET", "fallback"); got != "fallback" {
			t.Fatalf("envStr default: got %q", got)
		}
		if got := envInt("RHB_TEST_UNSET", 42); got != 42 {
			t.Fatalf("envInt default: got %d", got)
		}
		if got := envDur("RHB_TEST_UNSET", time.Minute); got != time.Minute {
			t.Fatalf("envDur default: got %v", got)
		}
		if got := envBool("RHB_TEST_UNSET", true); !got {
			t.Fatalf("envBool default: got false")
		}
	})

	t.Run("set vars are parsed", func(t *testing.T) {
		t.Setenv("RHB_TEST_INT", "7")
		t.Setenv("RHB_TEST_DUR", "90s")
		t.Setenv("RHB_TEST_BOOL", "off")
		if got := envInt("RHB_TEST_INT", 0); got != 7 {
			t.Fatalf("envInt: got %d", got)
		}
		if got := envDur("RHB_TEST_DUR", 0); got != 90*time.Second {
			t.Fatalf("envDur: got %v", got)
		}
		if got := envBool("RHB_TEST_BOOL", true); got {
			t.Fatalf("envBool: expected false for %q", "off")
		}
	})

	t.Run("garbage values keep the default", func(t *testing.T) {
		t.Setenv("RHB_TEST_INT", "seven")
		t.Setenv("RHB_TEST_DUR", "soon")
		if got := envInt("RHB_TEST_INT", 9); got != 9 {
			t.Fatalf("envInt garbage: got %d", got)
		}
		if got := envDur("RHB_TEST_DUR", time.Second); got != time.Second {
			t.Fatalf("envDur garbage: got %v", got)
		}
	})
}

func TestLoadRateLimitConfigClamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-3")
	t.Setenv("RATE_LIMIT_TTL", "1s")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")

	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 1 {
		t.Fatalf("capacity not clamped: %d", cfg.Capacity)
	}
	if cfg.RefillTokens != 1 {
		t.Fatalf("refill tokens not clamped: %d", cfg.RefillTokens)
	}
	if cfg.TTL < 5*cfg.RefillInterval {
		t.Fatalf("ttl %v shorter than five refill intervals", cfg.TTL)
	}
}

func TestParseMethods(t *testing.T) {
	m := parseMethods("get, head ,POST")
	for _, want := range []string{"GET", "HEAD", "POST"} {
		if !m[want] {
			t.Fatalf("method %s missing from %v", want, m)
		}
	}
	if len(m) != 3 {
		t.Fatalf("unexpected methods: %v", m)
	}
}

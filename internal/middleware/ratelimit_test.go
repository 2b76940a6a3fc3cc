// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	rl := NewRateLimiter(10, 5)
	handler := rl.Middleware()(okHandler())

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i, rec.Code, http.StatusOK)
		}
	}
}

func TestRateLimiter_RejectsOverBurst(t *testing.T) {
	rl := NewRateLimiter(0.1, 2)
	handler := rl.Middleware()(okHandler())

	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		last = rec.Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("third request status = %d, want %d", last, http.StatusTooManyRequests)
	}
}

func TestRateLimiter_PerIPBuckets(t *testing.T) {
	rl := NewRateLimiter(0.1, 1)
	handler := rl.Middleware()(okHandler())

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send("10.0.0.3:1"); code != http.StatusOK {
		t.Fatalf("first IP first request = %d, want %d", code, http.StatusOK)
	}
	if code := send("10.0.0.3:1"); code != http.StatusTooManyRequests {
		t.Fatalf("first IP second request = %d, want %d", code, http.StatusTooManyRequests)
	}
	// A different client keeps its own bucket
	if code := send("10.0.0.4:1"); code != http.StatusOK {
		t.Errorf("second IP first request = %d, want %d", code, http.StatusOK)
	}
}

func TestGetClientIP(t *testing.T) {
	t.Run("X-Real-IP preferred", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", "203.0.113.7")
		req.Header.Set("X-Forwarded-For", "198.51.100.1")
		if ip := getClientIP(req); ip != "203.0.113.7" {
			t.Errorf("getClientIP() = %q, want %q", ip, "203.0.113.7")
		}
	})

	t.Run("X-Forwarded-For fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "198.51.100.1")
		if ip := getClientIP(req); ip != "198.51.100.1" {
			t.Errorf("getClientIP() = %q, want %q", ip, "198.51.100.1")
		}
	})

	t.Run("RemoteAddr fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.9:5555"
		if ip := getClientIP(req); ip != "192.0.2.9:5555" {
			t.Errorf("getClientIP() = %q, want %q", ip, "192.0.2.9:5555")
		}
	})
}

func TestLimiterCache_ClearIfExceeds(t *testing.T) {
	cache := newLimiterCache[string](1, 1)
	for _, key := range []string{"a", "b", "c"} {
		cache.get(key)
	}
	if cache.clearIfExceeds(5) {
		t.Error("cache cleared below max size")
	}
	if !cache.clearIfExceeds(2) {
		t.Error("cache not cleared above max size")
	}
	if len(cache.limiters) != 0 {
		t.Errorf("len(limiters) = %d after clear, want 0", len(cache.limiters))
	}
}

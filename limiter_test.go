package minsite

import (
	"testing"
	"time"
)

func TestSubmitLimiterBlocksAfterMax(t *testing.T) {
	limiter := NewSubmitLimiter(2, 200*time.Millisecond)
	ip := "203.0.113.10"

	if !limiter.Allow(ip) {
		t.Fatalf("expected first attempt to be allowed")
	}
	if !limiter.Allow(ip) {
		t.Fatalf("expected second attempt to be allowed")
	}
	if limiter.Allow(ip) {
		t.Fatalf("expected third attempt to be blocked")
	}
}

func TestSubmitLimiterResetsAfterWindow(t *testing.T) {
	limiter := NewSubmitLimiter(1, 150*time.Millisecond)
	ip := "203.0.113.20"

	if !limiter.Allow(ip) {
		t.Fatalf("expected first attempt to be allowed")
	}
	if limiter.Allow(ip) {
		t.Fatalf("expected second attempt to be blocked")
	}

	time.Sleep(200 * time.Millisecond)
	if !limiter.Allow(ip) {
		t.Fatalf("expected attempt after window to be allowed")
	}
}

func TestSubmitLimiterIsPerIP(t *testing.T) {
	limiter := NewSubmitLimiter(1, 200*time.Millisecond)

	if !limiter.Allow("203.0.113.30") {
		t.Fatalf("expected first IP to be allowed")
	}
	if !limiter.Allow("203.0.113.31") {
		t.Fatalf("expected second IP to be allowed independently")
	}
	if limiter.Allow("203.0.113.30") {
		t.Fatalf("expected first IP to be blocked on its second attempt")
	}
}

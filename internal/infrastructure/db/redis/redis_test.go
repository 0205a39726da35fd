package redis

import (
	"testing"
	"time"
)

func TestTokenRevoker_Key(t *testing.T) {
	r := NewTokenRevoker(nil)
	if got := r.key("tok-1"); got != "revoked:tok-1" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestNewFilterCache_TTL(t *testing.T) {
	if c := NewFilterCache(nil, 0); c.ttl != defaultFilterCacheTTL {
		t.Fatalf("expected default ttl, got %v", c.ttl)
	}
	if c := NewFilterCache(nil, time.Minute); c.ttl != time.Minute {
		t.Fatalf("expected 1m ttl, got %v", c.ttl)
	}
}

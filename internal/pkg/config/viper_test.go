package config

import (
	"bytes"
	"testing"
	"time"
)

func TestNewViperFromBytes(t *testing.T) {
	yaml := []byte(`
app:
  name: security-jwt-service
  debug: true
jwt:
  secret: c2VjcmV0LWtleQ==
  ttl_minutes: 15
limits:
  hours: 2
tags: one,two
`)

	cfg, err := NewViperFromBytes("yaml", yaml)
	if err != nil {
		t.Fatalf("NewViperFromBytes() error = %v", err)
	}

	if got := cfg.GetString("app.name"); got != "security-jwt-service" {
		t.Fatalf("GetString(app.name) = %q", got)
	}
	if !cfg.GetBool("app.debug") {
		t.Fatal("GetBool(app.debug) = false, want true")
	}
	if got := cfg.GetMinute("jwt.ttl_minutes"); got != 15*time.Minute {
		t.Fatalf("GetMinute(jwt.ttl_minutes) = %v", got)
	}
	if got := cfg.GetHour("limits.hours"); got != 2*time.Hour {
		t.Fatalf("GetHour(limits.hours) = %v", got)
	}
	if got := cfg.GetBinary("jwt.secret"); !bytes.Equal(got, []byte("secret-key")) {
		t.Fatalf("GetBinary(jwt.secret) = %q", got)
	}
	if got := cfg.GetArray("tags"); len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Fatalf("GetArray(tags) = %v", got)
	}
}

func TestNewViperFromBytes_InvalidType(t *testing.T) {
	if _, err := NewViperFromBytes(" ", []byte("a: 1")); err == nil {
		t.Fatal("NewViperFromBytes() should reject a blank config type")
	}
}

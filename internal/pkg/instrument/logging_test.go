package instrument

import (
	"log/slog"
	"testing"
)

func TestBuildMaskKeys(t *testing.T) {
	t.Run("DefaultsAlwaysPresent", func(t *testing.T) {
		keys := buildMaskKeys(nil)
		for _, want := range []string{"password", "secret", "authorization", "access_token", "refresh_token"} {
			if _, ok := keys[want]; !ok {
				t.Fatalf("default mask key %q missing", want)
			}
		}
	})

	t.Run("ConfiguredFieldsNormalized", func(t *testing.T) {
		keys := buildMaskKeys([]string{" X-Api-Key ", "", "PIN"})
		if _, ok := keys["x-api-key"]; !ok {
			t.Fatal("configured mask key x-api-key missing")
		}
		if _, ok := keys["pin"]; !ok {
			t.Fatal("configured mask key pin missing")
		}
		if _, ok := keys[""]; ok {
			t.Fatal("empty mask key should be dropped")
		}
	})
}

func TestMaskAttr(t *testing.T) {
	keys := buildMaskKeys(nil)

	t.Run("MaskedKey", func(t *testing.T) {
		got := maskAttr(slog.String("password", "hunter2"), keys)
		if got.Value.String() != "***" {
			t.Fatalf("masked value = %q, want ***", got.Value.String())
		}
	})

	t.Run("JSONPayload", func(t *testing.T) {
		got := maskAttr(slog.String("body", `{"username":"alice","refresh_token":"abc"}`), keys)
		want := `{"refresh_token":"***","username":"alice"}`
		if got.Value.String() != want {
			t.Fatalf("masked body = %q, want %q", got.Value.String(), want)
		}
	})

	t.Run("NestedGroup", func(t *testing.T) {
		got := maskAttr(slog.Group("req", slog.String("authorization", "Bearer x"), slog.String("path", "/health")), keys)
		group := got.Value.Group()
		if group[0].Value.String() != "***" {
			t.Fatalf("group authorization = %q, want ***", group[0].Value.String())
		}
		if group[1].Value.String() != "/health" {
			t.Fatalf("group path = %q, want /health", group[1].Value.String())
		}
	})

	t.Run("PlainValueUntouched", func(t *testing.T) {
		got := maskAttr(slog.String("username", "alice"), keys)
		if got.Value.String() != "alice" {
			t.Fatalf("plain value = %q, want alice", got.Value.String())
		}
	})
}

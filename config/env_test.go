package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	t.Setenv(Prefix+"COOP", "")
	if got := Bool("COOP", true); !got {
		t.Fatalf("empty variable should keep the default")
	}
	if got := String("SPEC", "encounter.yaml"); got != "encounter.yaml" {
		t.Fatalf("String default = %q", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		value string
		check func(t *testing.T)
	}{
		{"bool", "true", func(t *testing.T) {
			if !Bool("V", false) {
				t.Fatalf("expected true")
			}
		}},
		{"bad bool", "maybe", func(t *testing.T) {
			if Bool("V", false) {
				t.Fatalf("bad bool should fall back")
			}
		}},
		{"int", "42", func(t *testing.T) {
			if got := Int64("V", 0); got != 42 {
				t.Fatalf("Int64 = %d", got)
			}
		}},
		{"bad int", "x", func(t *testing.T) {
			if got := Int64("V", 7); got != 7 {
				t.Fatalf("Int64 = %d", got)
			}
		}},
		{"float", "0.25", func(t *testing.T) {
			if got := Float("V", 1); got != 0.25 {
				t.Fatalf("Float = %v", got)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(Prefix+"V", tt.value)
			tt.check(t)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("BOSSFIGHT_SEED=99\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(Prefix+"SEED", "")
	os.Unsetenv(Prefix + "SEED")

	if err := Load(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := Int64("SEED", 0); got != 99 {
		t.Fatalf("SEED = %d, want 99", got)
	}
}

package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadEmbeddedEncounter(t *testing.T) {
	withDir(t, t.TempDir())

	spec, err := LoadEncounterSpec(EncounterFile)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if spec.Boss.MaxHP != 10 || spec.Boss.FireInterval != [2]int{36, 24} {
		t.Fatalf("unexpected boss tuning: %+v", spec.Boss)
	}
	if spec.Screen.HUDLine != 68 {
		t.Fatalf("expected hud line 68, got %d", spec.Screen.HUDLine)
	}
	if len(spec.Tiers) != 2 || spec.Tiers[0].Cols*spec.Tiers[0].Rows != 10 || spec.Tiers[1].Cols*spec.Tiers[1].Rows != 15 {
		t.Fatalf("unexpected tiers: %+v", spec.Tiers)
	}
	if spec.Timings.InputDelay().Milliseconds() != 6000 {
		t.Fatalf("expected 6s input delay, got %v", spec.Timings.InputDelay())
	}
	if len(spec.Colors.Ships) != 2 {
		t.Fatalf("expected two ship colors, got %d", len(spec.Colors.Ships))
	}
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	withDir(t, dir)

	override := "boss:\n  max_hp: 42\n"
	if err := os.WriteFile(filepath.Join(dir, "partial.yaml"), []byte(override), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := LoadSpec[EncounterSpec]("prefabs/partial.yaml")
	if err != nil {
		t.Fatalf("load override: %v", err)
	}
	if got.Boss.MaxHP != 42 {
		t.Fatalf("expected disk value 42, got %d", got.Boss.MaxHP)
	}
	if _, ok := ModTime("partial.yaml"); !ok {
		t.Fatalf("expected mod time for disk override")
	}
	if _, ok := ModTime(EncounterFile); ok {
		t.Fatalf("embedded-only file should have no mod time")
	}
}

func TestValidate(t *testing.T) {
	base, err := LoadSpec[EncounterSpec](EncounterFile)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("shipped spec invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*EncounterSpec)
	}{
		{name: "zero_screen", mutate: func(s *EncounterSpec) { s.Screen.Width = 0 }},
		{name: "hud_below_screen", mutate: func(s *EncounterSpec) { s.Screen.HUDLine = s.Screen.Height }},
		{name: "boss_too_wide", mutate: func(s *EncounterSpec) { s.Boss.Width = s.Screen.Width }},
		{name: "one_tier", mutate: func(s *EncounterSpec) { s.Tiers = s.Tiers[:1] }},
		{name: "empty_grid", mutate: func(s *EncounterSpec) {
			s.Tiers = append([]TierSpec(nil), s.Tiers...)
			s.Tiers[1].Rows = 0
		}},
		{name: "negative_lives", mutate: func(s *EncounterSpec) { s.Lives = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := base
			tt.mutate(&spec)
			if err := spec.Validate(); !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("expected ErrInvalidSpec, got %v", err)
			}
		})
	}
}

func TestLoadScript(t *testing.T) {
	withDir(t, t.TempDir())

	for _, name := range []string{"drops.tengo", "scripts/drops.tengo", "prefabs/scripts/drops.tengo"} {
		data, err := LoadScript(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("%s: empty script", name)
		}
	}
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: `"#ff0000"`, want: color.NRGBA{R: 255, A: 255}},
		{in: `"00ff0080"`, want: color.NRGBA{G: 255, A: 128}},
		{in: `"#fff"`, wantErr: true},
		{in: `"#gg0000"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tt.in), &c)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if c.Color != tt.want {
				t.Fatalf("got %v want %v", c.Color, tt.want)
			}
		})
	}

	var unset *YAMLColor
	if unset.Or(color.White) != color.White {
		t.Fatalf("nil color should fall back")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		kind ChangeKind
		ok   bool
	}{
		{path: "prefabs/encounter.yaml", kind: ChangeSpec, ok: true},
		{path: "prefabs/x.YML", kind: ChangeSpec, ok: true},
		{path: "prefabs/scripts/drops.tengo", kind: ChangeScript, ok: true},
		{path: "prefabs/notes.txt"},
	}
	for _, tt := range tests {
		kind, ok := classify(tt.path)
		if ok != tt.ok || (ok && kind != tt.kind) {
			t.Fatalf("classify(%s) = %v, %v", tt.path, kind, ok)
		}
	}
}

func withDir(t *testing.T, dir string) {
	t.Helper()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })
}

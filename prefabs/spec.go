package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EncounterFile is the prefab holding the boss encounter.
const EncounterFile = "encounter.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadEncounterSpec loads and validates an encounter prefab.
func LoadEncounterSpec(filename string) (EncounterSpec, error) {
	spec, err := LoadSpec[EncounterSpec](filename)
	if err != nil {
		return EncounterSpec{}, err
	}
	if err := spec.Validate(); err != nil {
		return EncounterSpec{}, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return spec, nil
}

type EncounterSpec struct {
	Name         string           `yaml:"name"`
	Level        int              `yaml:"level"`
	BossLevel    int              `yaml:"boss_level"`
	Screen       ScreenSpec       `yaml:"screen"`
	Timings      TimingSpec       `yaml:"timings"`
	Boss         BossSpec         `yaml:"boss"`
	Tiers        []TierSpec       `yaml:"tiers"`
	Ship         ShipSpec         `yaml:"ship"`
	Lives        int              `yaml:"lives"`
	LifeScore    int              `yaml:"life_score"`
	DropScript   string           `yaml:"drop_script"`
	Items        ItemsSpec        `yaml:"items"`
	Achievements AchievementsSpec `yaml:"achievements"`
	Colors       PaletteSpec      `yaml:"colors"`
}

type ScreenSpec struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	HUDLine int `yaml:"hud_line"`
}

// TimingSpec holds wall-time gates in milliseconds and frame counts.
type TimingSpec struct {
	InputDelayMS    int `yaml:"input_delay_ms"`
	CountdownBeepMS int `yaml:"countdown_beep_ms"`
	FinishDelayMS   int `yaml:"finish_delay_ms"`
	PauseCooldownMS int `yaml:"pause_cooldown_ms"`
	ToastFrames     int `yaml:"toast_frames"`
	RespawnFrames   int `yaml:"respawn_frames"`
}

func (t TimingSpec) InputDelay() time.Duration {
	return time.Duration(t.InputDelayMS) * time.Millisecond
}

func (t TimingSpec) CountdownBeep() time.Duration {
	return time.Duration(t.CountdownBeepMS) * time.Millisecond
}

func (t TimingSpec) FinishDelay() time.Duration {
	return time.Duration(t.FinishDelayMS) * time.Millisecond
}

func (t TimingSpec) PauseCooldown() time.Duration {
	return time.Duration(t.PauseCooldownMS) * time.Millisecond
}

type BossSpec struct {
	MaxHP           int     `yaml:"max_hp"`
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	OffsetY         int     `yaml:"offset_y"`
	MarginX         int     `yaml:"margin_x"`
	BaseStep        int     `yaml:"base_step"`
	MoveInterval    [2]int  `yaml:"move_interval"`
	SpeedMultiplier [2]int  `yaml:"speed_multiplier"`
	FireInterval    [2]int  `yaml:"fire_interval"`
	BulletSpeed     float64 `yaml:"bullet_speed"`
	BulletWidth     int     `yaml:"bullet_width"`
	BulletHeight    int     `yaml:"bullet_height"`
	SpreadStep      float64 `yaml:"spread_step"`
}

// TierSpec describes one escort wave. Intervals are in frames.
type TierSpec struct {
	Cols         int `yaml:"cols"`
	Rows         int `yaml:"rows"`
	UnitWidth    int `yaml:"unit_width"`
	UnitHeight   int `yaml:"unit_height"`
	SpacingX     int `yaml:"spacing_x"`
	SpacingY     int `yaml:"spacing_y"`
	Gap          int `yaml:"gap"`
	Step         int `yaml:"step"`
	MoveInterval int `yaml:"move_interval"`
	FireInterval int `yaml:"fire_interval"`
	BulletSpeed  int `yaml:"bullet_speed"`
	Hits         int `yaml:"hits"`
	Points       int `yaml:"points"`
	Coins        int `yaml:"coins"`
}

type ShipSpec struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Speed        int `yaml:"speed"`
	BoostSpeed   int `yaml:"boost_speed"`
	OffsetBottom int `yaml:"offset_bottom"`
	Spread       int `yaml:"spread"`
	FireCooldown int `yaml:"fire_cooldown"`
	RapidFire    int `yaml:"rapid_fire_cooldown"`
	BulletSpeed  int `yaml:"bullet_speed"`
	BulletWidth  int `yaml:"bullet_width"`
	BulletHeight int `yaml:"bullet_height"`
}

type ItemsSpec struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	FallSpeed    int `yaml:"fall_speed"`
	EffectFrames int `yaml:"effect_frames"`
}

type AchievementsSpec struct {
	Survivor string `yaml:"survivor"`
	Clear    string `yaml:"clear"`
}

type PaletteSpec struct {
	Ships  []YAMLColor `yaml:"ships"`
	Boss   *YAMLColor  `yaml:"boss"`
	Shield *YAMLColor  `yaml:"shield"`
	Escort *YAMLColor  `yaml:"escort"`
}

// Validate rejects specs the encounter cannot be built from.
func (s EncounterSpec) Validate() error {
	switch {
	case s.Screen.Width <= 0 || s.Screen.Height <= 0:
		return fmt.Errorf("%w: screen %dx%d", ErrInvalidSpec, s.Screen.Width, s.Screen.Height)
	case s.Screen.HUDLine < 0 || s.Screen.HUDLine >= s.Screen.Height:
		return fmt.Errorf("%w: hud_line %d", ErrInvalidSpec, s.Screen.HUDLine)
	case s.Boss.Width <= 0 || s.Boss.Height <= 0:
		return fmt.Errorf("%w: boss size %dx%d", ErrInvalidSpec, s.Boss.Width, s.Boss.Height)
	case s.Boss.Width+2*s.Boss.MarginX > s.Screen.Width:
		return fmt.Errorf("%w: boss does not fit between margins", ErrInvalidSpec)
	case len(s.Tiers) != 2:
		return fmt.Errorf("%w: want 2 escort tiers, got %d", ErrInvalidSpec, len(s.Tiers))
	case s.Ship.Width <= 0 || s.Ship.Height <= 0:
		return fmt.Errorf("%w: ship size %dx%d", ErrInvalidSpec, s.Ship.Width, s.Ship.Height)
	case s.Lives < 0:
		return fmt.Errorf("%w: lives %d", ErrInvalidSpec, s.Lives)
	}
	for i, tier := range s.Tiers {
		if tier.Cols <= 0 || tier.Rows <= 0 {
			return fmt.Errorf("%w: tier %d grid %dx%d", ErrInvalidSpec, i+1, tier.Cols, tier.Rows)
		}
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns c, or fallback when the color was not set.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

package encounter

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/bossfight/prefabs"
)

// Drop is the result of a successful drop roll.
type Drop struct {
	Kind    ItemKind
	Payload int
}

// DropTable runs the drop script for destroyed escort units. The script
// reads the globals tier, roll and pick and sets drop (item kind or "") and
// payload.
type DropTable struct {
	name     string
	compiled *tengo.Compiled
}

// LoadDropTable compiles a script from the prefab scripts directory.
func LoadDropTable(name string) (*DropTable, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("encounter: load drop script %s: %w", name, err)
	}
	table, err := NewDropTable(name, src)
	if err != nil {
		return nil, err
	}
	return table, nil
}

func NewDropTable(name string, src []byte) (*DropTable, error) {
	script := tengo.NewScript(src)
	_ = script.Add("tier", 0)
	_ = script.Add("roll", 0.0)
	_ = script.Add("pick", 0)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("encounter: compile drop script %s: %w", name, err)
	}
	return &DropTable{name: name, compiled: compiled}, nil
}

func (d *DropTable) Name() string {
	return d.name
}

// Roll evaluates the script once. roll is expected in [0,1) and pick is any
// non-negative integer the script may use to choose an entry.
func (d *DropTable) Roll(tier FormationTier, roll float64, pick int) (Drop, bool, error) {
	if d == nil || d.compiled == nil {
		return Drop{}, false, nil
	}
	if err := d.compiled.Set("tier", int(tier)); err != nil {
		return Drop{}, false, err
	}
	if err := d.compiled.Set("roll", roll); err != nil {
		return Drop{}, false, err
	}
	if err := d.compiled.Set("pick", pick); err != nil {
		return Drop{}, false, err
	}
	if err := d.compiled.Run(); err != nil {
		return Drop{}, false, fmt.Errorf("encounter: run drop script %s: %w", d.name, err)
	}

	if !d.compiled.IsDefined("drop") {
		return Drop{}, false, nil
	}
	kind := ItemKind(d.compiled.Get("drop").String())
	if kind == "" {
		return Drop{}, false, nil
	}
	if !kind.Valid() {
		return Drop{}, false, fmt.Errorf("encounter: drop script %s: unknown item %q", d.name, kind)
	}

	payload := 0
	if d.compiled.IsDefined("payload") {
		payload = d.compiled.Get("payload").Int()
	}
	return Drop{Kind: kind, Payload: payload}, true, nil
}

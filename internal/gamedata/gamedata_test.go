package gamedata

import (
	"errors"
	"math/rand"
	"testing"
	"testing/fstest"

	"github.com/samdwyer/floorcrawl/internal/entity"
)

func TestLoadDefaultCatalog(t *testing.T) {
	catalog, err := LoadDefaultCatalog()
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}

	for _, name := range []string{ClassWall, ClassFloor, ClassDoor, ClassEntrance, ClassStairs, ClassPlayer, "Chrysalis zombie", "runner zombie", "open door"} {
		if _, err := catalog.Class(name); err != nil {
			t.Errorf("Expected class %q: %v", name, err)
		}
	}

	for _, category := range []string{CategoryMonster, CategoryItem, CategoryDressing} {
		if catalog.Randomizer(category) == nil {
			t.Errorf("Expected randomizer for category %q", category)
		}
	}
	if catalog.Randomizer(CategoryPlayer) != nil {
		t.Error("player category has no chance and should not be drawable")
	}
}

func TestClassUnknown(t *testing.T) {
	catalog := MustLoadDefaultCatalog()

	_, err := catalog.Class("dragon")
	if !errors.Is(err, ErrUnknownClass) {
		t.Errorf("Class(dragon) error = %v, want ErrUnknownClass", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustClass on a missing name should panic")
		}
	}()
	catalog.MustClass("dragon")
}

func TestMustRandomizerPanicsOnEmptyCategory(t *testing.T) {
	catalog := MustLoadDefaultCatalog()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnknownCategory) {
			t.Errorf("recovered %v, want ErrUnknownCategory", r)
		}
	}()
	catalog.MustRandomizer("spaceship")
}

func TestNewObjectIsDeepCopy(t *testing.T) {
	catalog := MustLoadDefaultCatalog()
	class := catalog.MustClass("runner zombie")

	a := class.NewObject(1, 2)
	b := class.NewObject(3, 4)

	if a.ID == "" || a.ID == b.ID {
		t.Errorf("instances need distinct IDs, got %q and %q", a.ID, b.ID)
	}
	if a.X != 1 || a.Y != 2 {
		t.Errorf("position = (%d,%d), want (1,2)", a.X, a.Y)
	}
	if a.Fighter == nil || a.Fighter.HP != 16 || a.Fighter.MaxHP != 16 {
		t.Fatalf("fighter = %+v", a.Fighter)
	}
	if a.Ai == nil || a.Ai.Kind != entity.AiBasic {
		t.Errorf("ai = %+v, want basic", a.Ai)
	}

	a.Fighter.HP = 1
	a.Name = "renamed"
	if b.Fighter.HP != 16 || b.Name != "runner zombie" {
		t.Error("mutating one instance leaked into another")
	}
	if c := class.NewObject(0, 0); c.Fighter.HP != 16 {
		t.Error("mutating an instance leaked into the class")
	}
}

func TestTerrainHasNoID(t *testing.T) {
	catalog := MustLoadDefaultCatalog()
	wall := catalog.MustClass(ClassWall).NewObject(0, 0)
	if wall.ID != "" {
		t.Errorf("terrain ID = %q, want empty", wall.ID)
	}
	if wall.Blocks != entity.BlocksFull || wall.BlocksView != entity.BlocksFull {
		t.Errorf("wall blocks = %v/%v", wall.Blocks, wall.BlocksView)
	}
}

func TestRandomizerDistribution(t *testing.T) {
	common := &ObjectClass{Name: "common", Chance: 3}
	rare := &ObjectClass{Name: "rare", Chance: 1}
	r := NewRandomizer([]*ObjectClass{rare, common})

	rng := rand.New(rand.NewSource(12345))
	const draws = 20000
	hits := 0
	for i := 0; i < draws; i++ {
		if r.Draw(rng) == common {
			hits++
		}
	}

	ratio := float64(hits) / draws
	if ratio < 0.72 || ratio > 0.78 {
		t.Errorf("common drawn %.3f of the time, want about 0.75", ratio)
	}
}

func TestRandomizerDeterministic(t *testing.T) {
	r := MustLoadDefaultCatalog().MustRandomizer(CategoryItem)

	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))
	for i := 0; i < 10; i++ {
		a, b := r.Draw(rng1), r.Draw(rng2)
		if a != b {
			t.Errorf("Draw %d mismatch: %s != %s", i, a.Name, b.Name)
		}
	}
}

func TestNewRandomizerEmpty(t *testing.T) {
	if NewRandomizer(nil) != nil {
		t.Error("empty randomizer should be nil")
	}
	if NewRandomizer([]*ObjectClass{{Name: "x", Chance: 0}}) != nil {
		t.Error("zero-chance randomizer should be nil")
	}
}

func TestLoadCatalogYAMLAndJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"terrain.yaml": {Data: []byte(`
classes:
  - name: rubble
    symbol: ","
    color: "#808080"
    blocks: half
    category: terrain
`)},
		"actors.json": {Data: []byte(`{"classes":[
			{"name":"medkit","symbol":"!","color":"#FF00FF","pick_up":true,"function":"heal","category":"item","chance":1},
			{"name":"hero","symbol":"@","color":"#FFFFFF","alive":true,"inventory":["medkit"],
			 "fighter":{"max_hp":5,"defense":1,"power":2,"on_death":"player"}}
		]}`)},
	}

	catalog, err := LoadCatalog(fsys, "terrain.yaml", "actors.json")
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if catalog.Count() != 3 {
		t.Errorf("Count() = %d, want 3", catalog.Count())
	}

	rubble := catalog.MustClass("rubble").NewObject(0, 0)
	if rubble.Blocks != entity.BlocksHalf {
		t.Errorf("rubble blocks = %v, want half", rubble.Blocks)
	}

	hero := catalog.MustClass("hero").NewObject(0, 0)
	if len(hero.Inventory) != 1 || hero.Inventory[0].Function != entity.FunctionHeal {
		t.Fatalf("hero inventory = %+v", hero.Inventory)
	}
	if hero.Inventory[0].ID == "" {
		t.Error("inventory items need identities")
	}
	if hero.Fighter.OnDeath != entity.PlayerDeath {
		t.Errorf("on_death = %v", hero.Fighter.OnDeath)
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad blocks", `{"classes":[{"name":"a","symbol":"a","color":"#000000","blocks":"solid"}]}`},
		{"bad color", `{"classes":[{"name":"a","symbol":"a","color":"red"}]}`},
		{"long symbol", `{"classes":[{"name":"a","symbol":"ab","color":"#000000"}]}`},
		{"bad ai", `{"classes":[{"name":"a","symbol":"a","color":"#000000","ai":"genius"}]}`},
		{"duplicate", `{"classes":[{"name":"a","symbol":"a","color":"#000000"},{"name":"a","symbol":"a","color":"#000000"}]}`},
		{"missing door target", `{"classes":[{"name":"a","symbol":"a","color":"#000000","opens_into":"b"}]}`},
		{"missing inventory", `{"classes":[{"name":"a","symbol":"a","color":"#000000","inventory":["b"]}]}`},
		{"malformed", `{"classes":[`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"c.json": {Data: []byte(tt.data)}}
			if _, err := LoadCatalog(fsys, "c.json"); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := LoadCatalog(fstest.MapFS{}, "missing.json"); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#FFFFFF", true},
		{"invalid", false},
		{"#FFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#7F00FF")
	if err != nil {
		t.Fatal(err)
	}
	if c != (entity.Color{R: 0x7F, G: 0, B: 0xFF}) {
		t.Errorf("ParseColor = %+v", c)
	}
}

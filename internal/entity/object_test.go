package entity

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxBlocks(t *testing.T) {
	tests := []struct {
		a, b, want Blocks
	}{
		{BlocksNo, BlocksNo, BlocksNo},
		{BlocksNo, BlocksHalf, BlocksHalf},
		{BlocksFull, BlocksHalf, BlocksFull},
		{BlocksHalf, BlocksNo, BlocksHalf},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaxBlocks(tt.a, tt.b), "MaxBlocks(%v, %v)", tt.a, tt.b)
	}
}

func TestBlocksText(t *testing.T) {
	var b Blocks
	require.NoError(t, b.UnmarshalText([]byte("half")))
	assert.Equal(t, BlocksHalf, b)
	require.NoError(t, b.UnmarshalText(nil))
	assert.Equal(t, BlocksNo, b)
	assert.Error(t, b.UnmarshalText([]byte("solid")))
}

func TestCloneIsDeep(t *testing.T) {
	o := newZombie()
	o.Ai = Stun(o.Ai, 3)
	o.Inventory = []*Object{New(0, 0, '!', "first aid kit", ColorWhite, BlocksNo)}

	c := o.Clone()
	c.Fighter.HP = 1
	c.Ai.Previous.Kind = AiChrysalis
	c.Inventory[0].Name = "changed"

	assert.Equal(t, 10, o.Fighter.HP)
	assert.Equal(t, AiBasic, o.Ai.Previous.Kind)
	assert.Equal(t, "first aid kit", o.Inventory[0].Name)
	assert.Equal(t, o.ID, c.ID)
}

func TestDistance(t *testing.T) {
	a := New(0, 0, 'a', "a", ColorWhite, BlocksNo)
	b := New(3, 4, 'b', "b", ColorWhite, BlocksNo)
	assert.InDelta(t, 5.0, a.DistanceTo(b), 1e-9)
	assert.InDelta(t, math.Sqrt2, a.Distance(1, 1), 1e-9)
}

func TestObjectJSONRoundTrip(t *testing.T) {
	o := newZombie()
	o.Ai = Stun(&Ai{Kind: AiChrysalis}, 2)
	o.Function = FunctionFireball

	data, err := json.Marshal(o)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"blocks":"full"`)
	assert.Contains(t, string(data), `"function":"fireball"`)

	var back Object
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, o, &back)
}

func TestStun(t *testing.T) {
	basic := &Ai{Kind: AiBasic}
	s := Stun(basic, 3)
	require.Equal(t, AiStunned, s.Kind)
	assert.Same(t, basic, s.Previous)
	assert.Equal(t, 3, s.RemainingTurns)

	again := Stun(s, 5)
	assert.Equal(t, AiStunned, again.Kind)
	assert.Same(t, basic, again.Previous, "re-stun must not nest")
	assert.Equal(t, 5, again.RemainingTurns)

	fromNil := Stun(nil, 1)
	assert.Equal(t, AiBasic, fromNil.Previous.Kind)
}

func TestParseFunction(t *testing.T) {
	for _, name := range []string{"heal", "lightning", "fireball", "stun", ""} {
		fn, err := ParseFunction(name)
		require.NoError(t, err)
		assert.Equal(t, name, fn.String())
	}
	_, err := ParseFunction("teleport")
	assert.Error(t, err)
}

func TestParseAiKind(t *testing.T) {
	k, err := ParseAiKind("chrysalis")
	require.NoError(t, err)
	assert.Equal(t, AiChrysalis, k)
	_, err = ParseAiKind("")
	assert.Error(t, err)
}

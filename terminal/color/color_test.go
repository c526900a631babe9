package color

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorTcell(t *testing.T) {
	assert.Equal(t, tcell.ColorDefault, Default.Tcell())
	assert.Equal(t, tcell.PaletteColor(1), Red.Tcell())
	assert.Equal(t, tcell.PaletteColor(7), White.Tcell())
	assert.Equal(t, tcell.ColorDefault, Color(42).Tcell())
}

func TestParse(t *testing.T) {
	c, err := Parse(" Magenta ")
	require.NoError(t, err)
	assert.Equal(t, Magenta, c)

	_, err = Parse("mauve")
	assert.Error(t, err)
}

func TestRegistry_ReusesHandles(t *testing.T) {
	r := NewRegistry(16, nil)

	red := r.Get(Red, Default)
	assert.Equal(t, Handle(1), red)
	assert.Equal(t, red, r.Get(Red, Default))

	blue := r.Get(Blue, Black)
	assert.Equal(t, Handle(2), blue)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 3, r.Bound())

	fg, bg, _ := r.Style(blue).Decompose()
	assert.Equal(t, Blue.Tcell(), fg)
	assert.Equal(t, Black.Tcell(), bg)
}

func TestRegistry_ExhaustionAliasesDefault(t *testing.T) {
	const limit = 4
	r := NewRegistry(limit, nil)

	var handles []Handle
	for fg := Black; fg <= White; fg++ {
		handles = append(handles, r.Get(fg, Default))
	}

	// Pairs 1..3 are bound, everything after aliases pair 0.
	assert.Equal(t, []Handle{1, 2, 3, 0, 0, 0, 0, 0}, handles)
	assert.Equal(t, limit, r.Bound())
	assert.Equal(t, 8, r.Len())

	// Aliases are permanent.
	assert.Equal(t, DefaultHandle, r.Get(Yellow, Default))
	assert.Equal(t, r.Style(DefaultHandle), r.Style(r.Get(White, Default)))
}

func TestRegistry_UnknownHandle(t *testing.T) {
	r := NewRegistry(0, nil)
	assert.Equal(t, 1, r.Max())
	assert.Equal(t, DefaultHandle, r.Get(Red, Green))
	assert.Equal(t, tcell.StyleDefault, r.Style(Handle(99)))
	assert.Equal(t, tcell.StyleDefault, r.Style(Handle(-1)))
}

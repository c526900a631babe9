package terminal

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	goerrors "github.com/go-errors/errors"
	"github.com/hnimtadd/termwin/terminal/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSim(t *testing.T, opts Options) (*Context, tcell.SimulationScreen) {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	opts.Screen = scr
	ctx, err := Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctx.Close() })
	return ctx, scr
}

func TestOpen(t *testing.T) {
	ctx, scr := openSim(t, Options{MaxColorPairs: 8})

	assert.Equal(t, 8, ctx.Pairs().Max())
	assert.Same(t, scr, ctx.Screen())
	require.NotNil(t, ctx.Root())
	assert.Nil(t, ctx.Root().Parent())

	ctx.Root().Render("hi")
	cells, _, _ := scr.GetContents()
	assert.Equal(t, 'h', cells[0].Runes[0])
}

func TestOpen_InputPump(t *testing.T) {
	ctx, scr := openSim(t, Options{})

	scr.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	assert.Equal(t, keys.Rune('a'), ctx.Root().ReadKey(time.Second))

	scr.InjectKey(tcell.KeyF3, 0, tcell.ModNone)
	assert.Equal(t, keys.Of(keys.KeyF3), ctx.Root().ReadKey(time.Second))
}

func TestClose_Idempotent(t *testing.T) {
	ctx, _ := openSim(t, Options{})
	require.NoError(t, ctx.Close())
	require.NoError(t, ctx.Close())
	assert.Equal(t, keys.Of(keys.KeyNone), ctx.Root().ReadKey(10*time.Millisecond))
}

var errInit = errors.New("no tty")

type brokenScreen struct {
	tcell.SimulationScreen
}

func (brokenScreen) Init() error {
	return errInit
}

func TestOpen_InitError(t *testing.T) {
	ctx, err := Open(Options{Screen: brokenScreen{tcell.NewSimulationScreen("UTF-8")}})
	require.Error(t, err)
	assert.Nil(t, ctx)
	assert.True(t, errors.Is(err, errInit))
	assert.Contains(t, err.Error(), "initialize terminal")

	var stacked *goerrors.Error
	require.True(t, errors.As(err, &stacked))
	assert.NotEmpty(t, stacked.ErrorStack())
}

func TestColorPairs(t *testing.T) {
	tcs := []struct {
		name     string
		colors   int
		expected int
	}{
		{name: "monochrome", colors: 0, expected: 1},
		{name: "eight colors", colors: 8, expected: 64},
		{name: "256 colors", colors: 256, expected: maxColorPairs},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, colorPairs(tc.colors))
		})
	}
}

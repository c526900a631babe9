package color

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/hnimtadd/termwin/logger"
	"github.com/hnimtadd/termwin/terminal/utils"
	"github.com/mitchellh/hashstructure/v2"
)

// Pair identifies a foreground/background combination.
type Pair struct {
	Fg Color
	Bg Color
}

func (p Pair) String() string {
	return fmt.Sprintf("Pair{%s on %s}", p.Fg, p.Bg)
}

// Hash returns the identity of the pair in the registry.
func (p Pair) Hash() uint64 {
	hashed, err := hashstructure.Hash(p, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash pair: %v", err))
	return hashed
}

// Handle is the pair number bound at the terminal layer. Handle 0 is the
// default pair and is always bound.
type Handle int

// DefaultHandle is pair 0: terminal default foreground and background.
const DefaultHandle Handle = 0

// Registry hands out reusable pair handles. Handles are numbered
// sequentially from 1 up to the platform maximum; once the maximum is
// reached every new pair aliases the default handle. Nothing is ever
// evicted, so a Registry lives exactly as long as the terminal context that
// owns it.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	// max is the number of pairs the terminal supports, pair 0 included.
	max int

	// handles caches the handle for every pair ever requested, keyed by
	// Pair.Hash.
	handles map[uint64]Handle

	// table is the terminal layer binding: table[h] is the style drawn
	// for handle h.
	table []tcell.Style

	logger logger.Logger
}

// NewRegistry creates a registry for a terminal that supports limit color
// pairs. A limit below 1 is treated as 1, i.e. only the default pair.
func NewRegistry(limit int, log logger.Logger) *Registry {
	if log == nil {
		log = logger.Discard
	}
	return &Registry{
		max:     max(limit, 1),
		handles: make(map[uint64]Handle),
		table:   []tcell.Style{tcell.StyleDefault},
		logger:  log,
	}
}

// Get returns the handle bound to (fg, bg), binding a new one if needed.
// It never fails: when the pair table is full the default handle is
// returned and remembered for this pair.
func (r *Registry) Get(fg, bg Color) Handle {
	key := Pair{Fg: fg, Bg: bg}.Hash()
	if h, ok := r.handles[key]; ok {
		return h
	}

	if len(r.table) >= r.max {
		r.logger.Warn("color pairs exhausted, using default pair",
			"fg", fg, "bg", bg, "max", r.max)
		r.handles[key] = DefaultHandle
		return DefaultHandle
	}

	h := Handle(len(r.table))
	r.table = append(r.table, tcell.StyleDefault.
		Foreground(fg.Tcell()).
		Background(bg.Tcell()))
	r.handles[key] = h
	r.logger.Debug("bound color pair", "handle", int(h), "fg", fg, "bg", bg)
	return h
}

// Style resolves a handle to the style bound for it. Unknown handles
// resolve to the default style.
func (r *Registry) Style(h Handle) tcell.Style {
	if h < 0 || int(h) >= len(r.table) {
		return tcell.StyleDefault
	}
	return r.table[h]
}

// Len is the number of distinct pairs requested so far, aliased ones
// included.
func (r *Registry) Len() int {
	return len(r.handles)
}

// Bound is the number of handles bound at the terminal layer, pair 0
// included.
func (r *Registry) Bound() int {
	return len(r.table)
}

// Max is the platform maximum the registry was created with.
func (r *Registry) Max() int {
	return r.max
}

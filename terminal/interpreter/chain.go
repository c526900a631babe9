package interpreter

import (
	"strings"

	"github.com/hnimtadd/termwin/logger"
	"github.com/hnimtadd/termwin/terminal/ansi"
	"github.com/hnimtadd/termwin/terminal/handler"
)

// Chain renders text, dispatching every embedded escape to the first
// matching Kind.
type Chain struct {
	logger logger.Logger
}

func NewChain(log logger.Logger) *Chain {
	if log == nil {
		log = logger.Discard
	}
	return &Chain{logger: log}
}

// Run renders text onto h. Plain runs are written with WriteText; each
// sequence first cleans up after the previous one, then is interpreted by
// the kind Select picks for it. The attribute is reset before and after, so
// nothing leaks into later renders.
//
// Run reports false when a plain run did not fit; the rest of the text is
// dropped in that case.
func (c *Chain) Run(h handler.Handler, text string) bool {
	h.ResetAttributes()
	defer h.ResetAttributes()

	current := KindDefault
	for pos := 0; pos < len(text); {
		i := strings.IndexByte(text[pos:], ansi.C0.ESC)
		if i < 0 {
			return h.WriteText(text[pos:])
		}
		if i > 0 && !h.WriteText(text[pos:pos+i]) {
			return false
		}
		pos += i

		current.Cleanup(h)
		kind, n := Select(text[pos:])
		seq := text[pos : pos+n]
		c.logger.Debug("dispatch", "kind", kind, "seq", ansi.Quote(seq))
		kind.Interpret(h, seq, c.logger)
		current = kind
		pos += n
	}
	return true
}

package csi

import (
	"fmt"
	"strings"

	"github.com/hnimtadd/termwin/terminal/ansi"
	"github.com/hnimtadd/termwin/terminal/sgr"
)

// Command is a parsed control sequence: ESC [ params final.
type Command struct {
	Params []uint16
	Final  uint8
}

func (c Command) String() string {
	return fmt.Sprintf("CSI %v %c", c.Params, c.Final)
}

// Param returns the i-th parameter, or def when it is absent.
func (c Command) Param(i int, def uint16) uint16 {
	if i < 0 || i >= len(c.Params) {
		return def
	}
	return c.Params[i]
}

// Parse splits a complete sequence ("\x1b[2;3H") into its parameters and
// final byte. The caller guarantees the sequence is well formed.
func Parse(seq string) Command {
	body := strings.TrimPrefix(seq, ansi.CSI)
	if body == "" {
		return Command{}
	}
	return Command{
		Params: sgr.ParseParams(body[:len(body)-1]),
		Final:  body[len(body)-1],
	}
}

// Erase in Display mode
type EDMode uint8

const (
	EDModeBelow      EDMode = 0
	EDModeAbove      EDMode = 1
	EDModeComplete   EDMode = 2
	EDModeScrollback EDMode = 3
)

// Final bytes of the sequences the interpreter chain understands.
const (
	FinalSGR = 'm' // Select Graphic Rendition
	FinalCUP = 'H' // Cursor Position
	FinalED  = 'J' // Erase in Display
)

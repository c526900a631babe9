package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/hnimtadd/termwin/config"
	"github.com/hnimtadd/termwin/terminal/color"
	"github.com/hnimtadd/termwin/terminal/keys"
	"github.com/hnimtadd/termwin/terminal/style"
	"github.com/hnimtadd/termwin/terminal/window"
	"github.com/spf13/cobra"
)

const pollInterval = 100 * time.Millisecond

var statusStyle = window.Style{Fg: color.Black, Bg: color.Cyan, Modes: style.Bold}

func init() {
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   `demo`,
	Short: `draw a sample screen`,
	Long:  `draw boxes, colors and modes. q or escape quits.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error {
			return withTerminal(func(cfg *config.Config, root *window.Window) error {
				if err := drawDemo(root); err != nil {
					return err
				}
				for key := range root.Keys(nil, cfg.InputTimeout()) {
					switch key {
					case keys.Rune('q'), keys.Of(keys.KeyEscape):
						return nil
					case keys.Of(keys.KeyResize), keys.Of(keys.KeyRefresh):
						root.Touch()
						if err := drawDemo(root); err != nil {
							return err
						}
					}
				}
				return nil
			})
		})
	},
}

// drawDemo fills root with a framed palette window and a status line.
func drawDemo(root *window.Window) error {
	root.Clear(window.NoRefresh())
	w, h := root.Dimension()

	frame, err := root.NewWindow(1, 1, min(w-1, 40), min(h-2, 12))
	if err != nil {
		return err
	}
	fw, fh := frame.Dimension()
	frame.SafeRender(box(fw, fh), window.NoRefresh())

	inner, err := frame.NewWindow(1, 1, max(fw-2, 0), max(fh-2, 0))
	if err != nil {
		return err
	}
	for c := color.Black; c <= color.White; c++ {
		inner.PrettyRender(" "+c.String()+" ", window.Style{Fg: c, Bg: color.Default}, window.NoRefresh())
	}
	inner.Render("\n", window.NoRefresh())
	for _, m := range []style.Mode{style.Bold, style.Dim, style.Underline, style.Blink, style.Reverse} {
		inner.PrettyRender(" "+m.String()+" ", window.Style{Fg: color.Default, Bg: color.Default, Modes: m},
			window.NoRefresh())
	}
	inner.SafeRender("\n\x1b[31;1mred bold\x1b[0m \x1b[44mblue\x1b[49m back\n", window.NoRefresh())
	inner.Refresh()

	root.PrettyRender(" q quits ", statusStyle, window.At(0, h-1))
	return nil
}

// box returns the control sequences drawing a w x h frame with DEC line
// drawing characters.
func box(w, h int) string {
	if w < 2 || h < 2 {
		return ""
	}
	glyph := func(c string) string { return "\x1b(0" + c + "\x1b(B" }
	var sb strings.Builder
	for y := range h {
		sb.WriteString("\x1b[" + strconv.Itoa(y) + ";0H")
		switch y {
		case 0:
			sb.WriteString(glyph("l") + strings.Repeat(glyph("q"), w-2) + glyph("k"))
		case h - 1:
			sb.WriteString(glyph("m") + strings.Repeat(glyph("q"), w-2) + glyph("j"))
		default:
			sb.WriteString(glyph("x") + "\x1b[" + strconv.Itoa(y) + ";" + strconv.Itoa(w-1) + "H" + glyph("x"))
		}
	}
	return sb.String()
}

package main

import (
	"fmt"

	"github.com/hnimtadd/termwin/config"
	"github.com/hnimtadd/termwin/terminal/keys"
	"github.com/hnimtadd/termwin/terminal/window"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(keysCmd)
}

var keysCmd = &cobra.Command{
	Use:   `keys`,
	Short: `show decoded key presses`,
	Long:  `show every key press as the window layer decodes it. Escape quits, ctrl-l redraws.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error {
			return withTerminal(echoKeys)
		})
	},
}

func echoKeys(cfg *config.Config, root *window.Window) error {
	w, h := root.Dimension()
	status, err := root.NewWindow(0, h-1, w, min(h, 1))
	if err != nil {
		return err
	}
	_, sh := status.Dimension()
	log, err := root.NewWindow(0, 0, w, h-sh)
	if err != nil {
		return err
	}

	done := false
	reactions := map[keys.Event]func(){
		keys.Of(keys.KeyEscape): func() { done = true },
		keys.Of(keys.KeyRefresh): func() {
			root.Touch()
			log.Touch()
			status.Touch()
			status.Refresh()
		},
	}
	status.PrettyRender("esc quits, ctrl-l redraws", statusStyle)

	// Poll, so the escape reaction is noticed without another key press.
	timeout := cfg.InputTimeout()
	if timeout < 0 {
		timeout = pollInterval
	}
	for key := range log.Keys(reactions, timeout) {
		if done {
			return nil
		}
		if key == keys.Of(keys.KeyNone) {
			continue
		}
		if !log.SafeRender(describe(key) + "\n") {
			log.Clear()
			log.SafeRender(describe(key) + "\n")
		}
	}
	return nil
}

// describe formats a key event as one colored line.
func describe(key keys.Event) string {
	if key.Key == keys.KeyChar {
		return fmt.Sprintf("\x1b[32mchar\x1b[0m %q (%d)", key.Rune, key.Rune)
	}
	return fmt.Sprintf("\x1b[33mkey\x1b[0m  %s (%d)", key.Key, int(key.Key))
}

package main

import (
	"io"
	"os"

	"github.com/hnimtadd/termwin/config"
	"github.com/hnimtadd/termwin/terminal/window"
	"github.com/spf13/cobra"
)

var renderPlain bool

func init() {
	renderCmd.Flags().BoolVarP(&renderPlain, `plain`, `p`, false, `do not interpret control sequences`)
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   `render [file]`,
	Short: `render a file or stdin`,
	Long: `render a file or stdin into the terminal, interpreting SGR colors,
cursor positioning, erase display and line drawing sequences.
Press any key to quit.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error {
			text, err := readInput(args)
			if err != nil {
				return err
			}
			return withTerminal(func(cfg *config.Config, root *window.Window) error {
				renderText(root, text, renderPlain)
				root.ReadKey(-1)
				return nil
			})
		})
	},
}

func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(args[0])
	return string(data), err
}

// renderText draws text and marks a truncation in the bottom-right cell.
func renderText(root *window.Window, text string, plain bool) bool {
	var complete bool
	if plain {
		complete = root.Render(text, window.NoRefresh())
	} else {
		complete = root.SafeRender(text, window.NoRefresh())
	}
	if !complete {
		w, h := root.Dimension()
		root.PrettyRender(">", statusStyle, window.At(w-1, h-1), window.NoRefresh())
	}
	root.Refresh()
	return complete
}

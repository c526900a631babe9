package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-errors/errors"
	"github.com/hnimtadd/termwin"
	"github.com/hnimtadd/termwin/config"
	"github.com/hnimtadd/termwin/terminal/window"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          filepath.Base(os.Args[0]),
	Short:        "termwin draws text with control sequences into terminal windows",
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

var (
	debugFlag   bool
	configFlag  string
	logFileFlag string
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, `debug`, `d`, false, `print error stacks`)
	rootCmd.PersistentFlags().StringVarP(&configFlag, `config`, `c`, config.Path(), `config file`)
	rootCmd.PersistentFlags().StringVarP(&logFileFlag, `log-file`, `l`, ``, `log file, overrides the config`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// run reports the error of fn and sets the exit code.
func run(fn func() error) {
	err := fn()
	if err == nil {
		return
	}
	if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
		fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
	} else {
		fmt.Fprintln(os.Stderr, err.Error())
	}
	os.Exit(1)
}

// loadConfig reads the config file and applies the flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, errors.WrapPrefix(err, "load "+configFlag, 0)
	}
	if logFileFlag != "" {
		cfg.Log.File = logFileFlag
	}
	return cfg, nil
}

// withTerminal opens the terminal as configured and hands the root window
// to fn.
func withTerminal(fn func(cfg *config.Config, root *window.Window) error) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("stdout is not a terminal")
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, closeLog, err := cfg.Logger()
	if err != nil {
		return errors.WrapPrefix(err, "open log", 0)
	}
	defer closeLog()

	return termwin.Run(cfg.TerminalOptions(log), func(root *window.Window) error {
		return fn(cfg, root)
	})
}

// Package commands implements the tagflow CLI: scenario rendering, the
// terminal demo and theme inspection.
package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/agiangrant/tagflow/theme"
)

// globals holds the persistent flags shared by every command.
type globals struct {
	verbose   bool
	themePath string
	dark      bool

	log *slog.Logger
}

func (g *globals) loadTheme() (theme.Theme, error) {
	if g.themePath == "" {
		return theme.Default(), nil
	}
	return theme.Load(g.themePath)
}

// Root returns the `tagflow` command tree.
func Root(version string) *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:     "tagflow",
		Short:   "Animated chip input engine",
		Long:    "tagflow lays out and animates chip (tag) inputs. Render scripted scenarios to PNG, try the terminal demo, or inspect themes.",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			g.log = newLogger(cmd.ErrOrStderr(), g.verbose)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log debug records to stderr")
	root.PersistentFlags().StringVar(&g.themePath, "theme", "", "theme TOML file (defaults when empty)")
	root.PersistentFlags().BoolVar(&g.dark, "dark", false, "use the dark palette")

	root.AddCommand(renderCmd(g))
	root.AddCommand(demoCmd(g))
	root.AddCommand(themeCmd(g))
	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// openLog opens path for appending log records, or discards them when
// path is empty.
func openLog(path string, verbose bool) (*slog.Logger, func() error, error) {
	if path == "" {
		return discardLogger(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return newLogger(f, verbose), f.Close, nil
}

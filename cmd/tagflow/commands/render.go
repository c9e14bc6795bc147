package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agiangrant/tagflow/render"
	"github.com/agiangrant/tagflow/render/cells"
	"github.com/agiangrant/tagflow/retained"
	"github.com/agiangrant/tagflow/scenario"
)

func renderCmd(g *globals) *cobra.Command {
	var (
		outDir   string
		scale    float64
		fontPath string
		asCells  bool
	)
	cmd := &cobra.Command{
		Use:   "render <scenario.yaml>",
		Short: "Replay a scenario and write its frames",
		Long:  "Replay a YAML scenario against a simulated clock and write every frame step as a PNG (or as terminal cells with --cells).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			if s.Theme == "" && g.themePath != "" {
				abs, err := filepath.Abs(g.themePath)
				if err != nil {
					return err
				}
				s.Theme = abs
			}
			s.Dark = s.Dark || g.dark

			th, err := s.LoadTheme()
			if err != nil {
				return err
			}
			colors, err := th.Resolve(s.Dark)
			if err != nil {
				return err
			}

			runner := &scenario.Runner{Logger: g.log}
			if asCells {
				cr := cells.NewRenderer()
				runner.Renderer = cr
				out := cmd.OutOrStdout()
				runner.OnFrame = func(name string, c *retained.Container) error {
					_, err := fmt.Fprintf(out, "── %s\n%s\n", name, cr.Frame(c).String())
					return err
				}
			} else {
				r, err := newRasterRenderer(fontPath, th.FontSize)
				if err != nil {
					return err
				}
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return fmt.Errorf("failed to create %s: %w", outDir, err)
				}
				runner.Renderer = r
				runner.Options = []retained.Option{retained.WithTextCache(256)}
				runner.Icon = render.PlusIcon(colors.IconFg, th.Item.Height)
				n := 0
				runner.OnFrame = func(name string, c *retained.Container) error {
					n++
					path := filepath.Join(outDir, frameFile(n, name))
					if err := render.SavePNG(path, r.Frame(c, scale)); err != nil {
						return err
					}
					g.log.Debug("frame written", "path", path)
					return nil
				}
			}

			res, err := runner.Run(cmd.Context(), s)
			if err != nil {
				return err
			}
			if !asCells {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ %d frames written to %s\n", res.Frames, outDir)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "frames", "output directory for PNG frames")
	cmd.Flags().Float64Var(&scale, "scale", 2, "device pixels per logical pixel")
	cmd.Flags().StringVar(&fontPath, "font", "", "TrueType font file (Go Regular when empty)")
	cmd.Flags().BoolVar(&asCells, "cells", false, "print terminal cell frames instead of PNGs")
	return cmd
}

func newRasterRenderer(fontPath string, size float64) (*render.Renderer, error) {
	if fontPath == "" {
		return render.NewRenderer(size)
	}
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	return render.NewRendererFromTTF(data, size)
}

// frameFile names the n-th frame, keeping only filename-safe characters.
func frameFile(n int, name string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
	return fmt.Sprintf("%03d-%s.png", n, clean)
}

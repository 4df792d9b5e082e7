package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ufoaiorg/ufoai-sub020/internal/character"
	"github.com/ufoaiorg/ufoai-sub020/internal/csi"
	"github.com/ufoaiorg/ufoai-sub020/internal/loadout"
	"github.com/ufoaiorg/ufoai-sub020/internal/logger"
	"github.com/ufoaiorg/ufoai-sub020/internal/utils"
)

type options struct {
	csiPath   string
	team      string
	equipment string
	skills    character.Skills
	seed      int64
	in        string
	out       string
	asJSON    bool
	verbose   bool
}

func main() {
	var opts options
	flag.StringVar(&opts.csiPath, "csi", "", "definition file; empty uses the embedded tables")
	flag.StringVar(&opts.team, "team", "human", "team id")
	flag.StringVar(&opts.equipment, "equipment", "soldier_default", "equipment table id")
	flag.IntVar(&opts.skills.Power, "power", 50, "power skill (0-100)")
	flag.IntVar(&opts.skills.Speed, "speed", 50, "speed skill (0-100)")
	flag.IntVar(&opts.skills.Accuracy, "accuracy", 50, "accuracy skill (0-100)")
	flag.IntVar(&opts.skills.Mind, "mind", 50, "mind skill (0-100)")
	flag.Int64Var(&opts.seed, "seed", 0, "generator seed; zero seeds from the clock")
	flag.StringVar(&opts.in, "in", "", "render a saved preview instead of generating one")
	flag.StringVar(&opts.out, "out", "", "also save the preview as JSON to this path")
	flag.BoolVar(&opts.asJSON, "json", false, "print JSON instead of grids")
	flag.BoolVar(&opts.verbose, "v", false, "log generator decisions")
	flag.Parse()

	level := "info"
	if opts.verbose {
		level = "debug"
	}
	logger.InitLoggerWithWriter(logger.NewConfig(level, logger.LogFormatText, "loadout-debug", "dev", "dev", false), os.Stderr)

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		slog.Error("Debug run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, w io.Writer) error {
	reg, err := loadTables(opts.csiPath)
	if err != nil {
		return err
	}

	var preview *loadout.Preview
	if opts.in != "" {
		preview = &loadout.Preview{}
		if err := utils.LoadJSON(opts.in, preview); err != nil {
			return err
		}
	} else {
		previewer, err := loadout.NewPreviewer(reg, loadout.DefaultConfig())
		if err != nil {
			return err
		}
		preview, err = previewer.Preview(ctx, loadout.PreviewRequest{
			Team:      opts.team,
			Equipment: opts.equipment,
			Skills:    opts.skills,
			Seed:      opts.seed,
		})
		if err != nil {
			return err
		}
	}

	if opts.out != "" {
		if err := utils.SaveJSON(opts.out, preview); err != nil {
			return err
		}
	}

	if opts.asJSON {
		return utils.WriteJSON(w, preview)
	}
	return renderPreview(w, reg, preview)
}

func loadTables(path string) (*csi.Registry, error) {
	if path == "" {
		return csi.Default()
	}
	return csi.NewLoader().LoadFile(path)
}

// renderPreview prints a summary line and one grid per container.
func renderPreview(w io.Writer, reg *csi.Registry, p *loadout.Preview) error {
	fmt.Fprintf(w, "%s (%s/%s) kind=%s armed=%t weight=%.1f/%.1f tu=%d\n",
		p.ActorID, p.Team, p.Equipment, p.Kind, p.Armed, p.Weight, p.MaxLoad, p.TU)

	for _, view := range p.Containers {
		def, err := reg.ContainerByName(view.ID)
		if err != nil {
			return err
		}
		grid, err := containerGrid(reg, def, view)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "\n[%s]\n", view.ID)
		width, height := def.Shape.Width(), def.Shape.Height()
		if !def.Single {
			fmt.Fprintln(w, grid.Render(max(width, grid.Width()), max(height, grid.Height())))
		}
		for _, it := range view.Items {
			line := fmt.Sprintf("  %-24s @%d,%d x%d", it.Name, it.X, it.Y, it.Amount)
			if it.Rotated {
				line += " rotated"
			}
			if it.Ammo != "" {
				line += fmt.Sprintf(" loaded %s (%d)", it.Ammo, it.AmmoLeft)
			} else if it.AmmoLeft > 0 {
				line += fmt.Sprintf(" charges %d", it.AmmoLeft)
			}
			fmt.Fprintln(w, line)
		}
	}
	return nil
}

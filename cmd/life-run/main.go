package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"lifegrid/internal/render"
	"lifegrid/pkg/core"
	"lifegrid/pkg/life"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("life-run", flag.ContinueOnError)
	steps := fs.Int("steps", 100, "generations to simulate")
	frames := fs.Bool("frames", false, "print the board after every generation")
	realtime := fs.Bool("realtime", false, "pace generations at the configured rate")
	pattern := fs.String("pattern", "", "place a built-in pattern in the centre instead of a random fill")
	workers := fs.Int("workers", runtime.NumCPU(), "goroutines per generation")
	var overrides kvList
	fs.Var(&overrides, "set", "config override in key=value form (repeatable), e.g. rule=highlife, cell_size=8")
	if err := fs.Parse(args); err != nil {
		return err
	}

	kv := map[string]string{"workers": fmt.Sprint(*workers)}
	for _, o := range overrides {
		parts := strings.SplitN(o, "=", 2)
		if len(parts) != 2 {
			log.Printf("ignoring override %q: want key=value", o)
			continue
		}
		key, value := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if key == "birth" || key == "survival" {
			if _, rejected := life.ParseRuleList(value); len(rejected) > 0 {
				log.Printf("dropping %s values outside 0-8: %q", key, rejected)
			}
		}
		kv[key] = value
	}

	ctrl, err := life.NewController(life.FromMap(kv))
	if err != nil {
		return err
	}
	if *pattern != "" {
		p, ok := life.LookupPattern(*pattern)
		if !ok {
			return fmt.Errorf("unknown pattern %q", *pattern)
		}
		rows, cols := p.Bounds()
		ctrl.Place((ctrl.Rows()-rows)/2, (ctrl.Cols()-cols)/2, p)
	} else if err := ctrl.Randomize(ctrl.Density()); err != nil {
		return err
	}

	fmt.Fprintf(out, "%dx%d %s, %d generations\n", ctrl.Rows(), ctrl.Cols(), ctrl.Rules(), *steps)
	text := render.NewTextRenderer(out)
	if *frames {
		if err := ctrl.Render(text); err != nil {
			return err
		}
	}

	var renderErr error
	report := func() {
		fmt.Fprintf(out, "gen %d pop %d\n", ctrl.Generation(), ctrl.Population())
		if *frames && renderErr == nil {
			renderErr = ctrl.Render(text)
		}
		if ctrl.Generation() >= uint64(*steps) {
			ctrl.Stop()
		}
	}

	if *steps <= 0 {
		return nil
	}
	if *realtime {
		ctrl.Start()
		if err := core.Play(ctx, ctrl, report); err != nil {
			return err
		}
	} else {
		for ctrl.Generation() < uint64(*steps) {
			if err := ctx.Err(); err != nil {
				return err
			}
			ctrl.Step()
			report()
		}
	}
	if renderErr != nil {
		return renderErr
	}
	if !*frames {
		return ctrl.Render(text)
	}
	return nil
}

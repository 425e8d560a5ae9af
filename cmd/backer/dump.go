package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	backer "github.com/ejjonny/backer-sub000"
	"github.com/ejjonny/backer-sub000/internal/blueprint"
)

func runDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	area := size{Width: 100, Height: 100}
	fs.Var(&area, "size", "Layout area as WIDTHxHEIGHT")
	watchFile := fs.Bool("watch", false, "Re-run when the file changes")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("dump needs exactly one blueprint file")
	}
	path := fs.Arg(0)

	run := func() error {
		return dump(os.Stdout, path, backer.NewRect(0, 0, area.Width, area.Height))
	}
	if *watchFile {
		return watch(path, run)
	}
	return run()
}

// dump lays out the blueprint at path in area and writes the drawn leaves
// followed by the laid out tree.
func dump(w io.Writer, path string, area backer.Rect) error {
	bp, err := blueprint.Load(path)
	if err != nil {
		return err
	}
	engine, err := backer.New(func(*blueprint.Canvas) *backer.Node[blueprint.Canvas] {
		return bp.Build()
	}, backer.WithLogPrefix("dump"))
	if err != nil {
		return err
	}

	canvas := &blueprint.Canvas{}
	engine.Draw(area, canvas)
	tree := engine.Layout(area, canvas)

	fmt.Fprintf(w, "%s (%gx%g)\n", path, area.Width, area.Height)
	for _, d := range canvas.Drawn {
		r := d.Rect
		fmt.Fprintf(w, "  %-16s x=%g y=%g w=%g h=%g\n", d.Label, r.X, r.Y, r.Width, r.Height)
	}
	if hidden := len(bp.Labels()) - len(canvas.Drawn); hidden > 0 {
		fmt.Fprintf(w, "  (%d not drawn)\n", hidden)
	}
	fmt.Fprintln(w)
	backer.Fprint(w, tree)
	return nil
}

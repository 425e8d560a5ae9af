package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	backer "github.com/ejjonny/backer-sub000"
	"github.com/ejjonny/backer-sub000/internal/blueprint"
)

func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	var area size
	fs.Var(&area, "size", "Layout area in cells as WIDTHxHEIGHT")
	color := fs.Bool("color", false, "Color each box")
	watchFile := fs.Bool("watch", false, "Re-run when the file changes")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("preview needs exactly one blueprint file")
	}
	path := fs.Arg(0)

	if !area.set {
		area.Width, area.Height = terminalSize()
	}
	rect := backer.NewRect(0, 0, area.Width, area.Height)

	var out *termenv.Output
	if *color {
		out = termenv.NewOutput(os.Stdout)
	}

	if !*watchFile {
		return preview(os.Stdout, path, rect, out)
	}
	screen := termenv.NewOutput(os.Stdout)
	return watch(path, func() error {
		screen.ClearScreen()
		return preview(os.Stdout, path, rect, out)
	})
}

// terminalSize returns the size of the attached terminal, leaving a line for
// the prompt, or 80x24 when stdout is not a terminal.
func terminalSize() (float32, float32) {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 1 {
			return float32(w), float32(h - 1)
		}
	}
	return 80, 24
}

// preview lays out the blueprint at path in area and renders every drawn
// leaf as a box. out colors the boxes when non-nil.
func preview(w io.Writer, path string, area backer.Rect, out *termenv.Output) error {
	bp, err := blueprint.Load(path)
	if err != nil {
		return err
	}
	engine, err := backer.New(func(*blueprint.Canvas) *backer.Node[blueprint.Canvas] {
		return bp.Build()
	}, backer.WithLogPrefix("preview"))
	if err != nil {
		return err
	}

	canvas := &blueprint.Canvas{}
	engine.Draw(area, canvas)

	g := newGrid(int(area.Width), int(area.Height))
	for i, d := range canvas.Drawn {
		g.box(d.Rect, d.Label, i)
	}
	return g.render(w, out)
}

type cell struct {
	r     rune
	owner int
	// cont marks the second column of a wide rune.
	cont bool
}

// grid is a character canvas in terminal cells.
type grid struct {
	width, height int
	cells         [][]cell
}

func newGrid(width, height int) *grid {
	g := &grid{width: max(width, 0), height: max(height, 0)}
	g.cells = make([][]cell, g.height)
	for y := range g.cells {
		row := make([]cell, g.width)
		for x := range row {
			row[x] = cell{r: ' ', owner: -1}
		}
		g.cells[y] = row
	}
	return g
}

func (g *grid) set(x, y int, r rune, owner int) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.cells[y][x] = cell{r: r, owner: owner}
}

// box draws the outline of r snapped to whole cells, with the label inside.
// Boxes one cell thin are filled instead.
func (g *grid) box(r backer.Rect, label string, owner int) {
	r = r.Round()
	x0, y0 := int(r.X), int(r.Y)
	x1, y1 := int(r.Right())-1, int(r.Bottom())-1
	if x1 < x0 || y1 < y0 {
		return
	}

	if x1 == x0 || y1 == y0 {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				g.set(x, y, '#', owner)
			}
		}
		return
	}

	for x := x0 + 1; x < x1; x++ {
		g.set(x, y0, '-', owner)
		g.set(x, y1, '-', owner)
	}
	for y := y0 + 1; y < y1; y++ {
		g.set(x0, y, '|', owner)
		g.set(x1, y, '|', owner)
	}
	for _, c := range [][2]int{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		g.set(c[0], c[1], '+', owner)
	}

	ly := y0 + 1
	if y1-y0 < 2 {
		ly = y0
	}
	g.text(x0+1, ly, runewidth.Truncate(label, x1-x0-1, "…"), owner)
}

// text writes s starting at (x, y), giving wide runes two cells.
func (g *grid) text(x, y int, s string, owner int) {
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		g.set(x, y, r, owner)
		if rw == 2 && x+1 < g.width && y >= 0 && y < g.height {
			g.cells[y][x+1] = cell{owner: owner, cont: true}
		}
		x += rw
	}
}

var palette = []termenv.ANSIColor{
	termenv.ANSIRed,
	termenv.ANSIGreen,
	termenv.ANSIYellow,
	termenv.ANSIBlue,
	termenv.ANSIMagenta,
	termenv.ANSICyan,
}

// render writes the grid row by row. Runs of cells with the same owner are
// colored together when out is non-nil.
func (g *grid) render(w io.Writer, out *termenv.Output) error {
	for _, row := range g.cells {
		var line []byte
		start := 0
		for start < len(row) {
			end := start
			var run []rune
			for end < len(row) && row[end].owner == row[start].owner {
				if !row[end].cont {
					run = append(run, row[end].r)
				}
				end++
			}
			seg := string(run)
			if out != nil && row[start].owner >= 0 {
				seg = out.String(seg).Foreground(palette[row[start].owner%len(palette)]).String()
			}
			line = append(line, seg...)
			start = end
		}
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

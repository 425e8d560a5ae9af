package backer

import (
	"fmt"
	"io"
	"strings"
)

// Sprint returns the laid out tree under n as a string for debugging.
func Sprint[S any](n *Node[S]) string {
	var sb strings.Builder
	Fprint(&sb, n)
	return sb.String()
}

// Fprint writes the laid out tree under n to w, one node per line, indented
// by depth. Rectangles are those assigned by the most recent layout.
func Fprint[S any](w io.Writer, n *Node[S]) {
	fprintNode(w, n, 0)
}

func fprintNode[S any](w io.Writer, n *Node[S], depth int) {
	indent := strings.Repeat("  ", depth)
	r := n.rect
	line := fmt.Sprintf("%s%s x=%g y=%g w=%g h=%g", indent, n.kind, r.X, r.Y, r.Width, r.Height)

	switch n.kind {
	case KindRow, KindColumn:
		if n.spacing != 0 {
			line += fmt.Sprintf(" spacing=%g", n.spacing)
		}
		if n.align != AlignUnset {
			line += " align=" + n.align.String()
		}
	case KindPadding:
		e := n.insets
		line += fmt.Sprintf(" insets=(%g %g %g %g)", e.Leading, e.Trailing, e.Top, e.Bottom)
	case KindOffset:
		line += fmt.Sprintf(" offset=(%g %g)", n.dx, n.dy)
	case KindExplicit:
		line += describeSizing(n.sizing)
	case KindDraw:
		if n.leaf != nil {
			line += " transition"
		}
	}
	fmt.Fprintln(w, line)

	switch {
	case n.kind == KindScope:
		n.scope.fprint(w, depth+1)
	case n.child != nil:
		fprintNode(w, n.child, depth+1)
	default:
		for _, c := range n.children {
			fprintNode(w, c, depth+1)
		}
	}
}

func describeSizing[S any](s *Sizing[S]) string {
	var b strings.Builder
	value := func(name string, v Value) {
		switch v.Unit {
		case UnitFixed:
			fmt.Fprintf(&b, " %s=%g", name, v.Amount)
		case UnitRelative:
			fmt.Fprintf(&b, " %s=%g%%", name, v.Amount*100)
		}
	}
	value("width", s.Width)
	value("height", s.Height)
	value("min-width", s.MinWidth)
	value("max-width", s.MaxWidth)
	value("min-height", s.MinHeight)
	value("max-height", s.MaxHeight)
	if s.Aspect > 0 {
		fmt.Fprintf(&b, " aspect=%g", s.Aspect)
	}
	if s.Align != AlignUnset {
		b.WriteString(" align=" + s.Align.String())
	}
	if s.ExpandX {
		b.WriteString(" expand-x")
	}
	if s.ExpandY {
		b.WriteString(" expand-y")
	}
	if s.DynamicWidth != nil {
		b.WriteString(" dynamic-width")
	}
	if s.DynamicHeight != nil {
		b.WriteString(" dynamic-height")
	}
	return b.String()
}

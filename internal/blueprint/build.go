package blueprint

import backer "github.com/ejjonny/backer-sub000"

// Build turns the blueprint into a layout tree. The blueprint must be valid.
func (b *Blueprint) Build() *backer.Node[Canvas] {
	n := b.base()
	if b.Kind != KindGroup {
		n = b.modify(n)
	}
	if b.Visible != nil && !*b.Visible {
		return backer.If(false, n)
	}
	return n
}

func (b *Blueprint) base() *backer.Node[Canvas] {
	switch b.Kind {
	case KindRow:
		return backer.RowSpaced(b.Spacing, b.children()...)
	case KindColumn:
		return backer.ColumnSpaced(b.Spacing, b.children()...)
	case KindStack:
		return backer.Stack(b.children()...)
	case KindGroup:
		return backer.Group(b.children()...)
	case KindDraw:
		label := b.Label
		return backer.Draw(func(area backer.Rect, c *Canvas) {
			c.record(label, area)
		})
	case KindSpace:
		return backer.Space[Canvas]()
	default:
		return backer.Empty[Canvas]()
	}
}

func (b *Blueprint) children() []*backer.Node[Canvas] {
	out := make([]*backer.Node[Canvas], len(b.Children))
	for i := range b.Children {
		out[i] = b.Children[i].Build()
	}
	return out
}

// modify applies sizing first, then padding, then offset, so the offset is
// outermost.
func (b *Blueprint) modify(n *backer.Node[Canvas]) *backer.Node[Canvas] {
	if b.Width != nil {
		n = n.Width(*b.Width)
	}
	if b.Height != nil {
		n = n.Height(*b.Height)
	}
	if b.RelWidth != nil {
		n = n.RelWidth(*b.RelWidth)
	}
	if b.RelHeight != nil {
		n = n.RelHeight(*b.RelHeight)
	}
	if b.MinWidth != nil {
		n = n.MinWidth(*b.MinWidth)
	}
	if b.MaxWidth != nil {
		n = n.MaxWidth(*b.MaxWidth)
	}
	if b.MinHeight != nil {
		n = n.MinHeight(*b.MinHeight)
	}
	if b.MaxHeight != nil {
		n = n.MaxHeight(*b.MaxHeight)
	}
	if b.Aspect > 0 {
		n = n.Aspect(b.Aspect)
	}
	switch b.Expand {
	case ExpandX:
		n = n.ExpandX()
	case ExpandY:
		n = n.ExpandY()
	case ExpandBoth:
		n = n.Expand()
	}
	if b.Align != "" {
		if a, err := backer.ParseAlign(b.Align); err == nil {
			n = n.Align(a)
		}
	}

	if b.Pad != 0 {
		n = n.Pad(b.Pad)
	}
	if e := (backer.Edges{Leading: b.PadLeading, Trailing: b.PadTrailing, Top: b.PadTop, Bottom: b.PadBottom}); !e.IsZero() {
		n = n.PadEdges(e)
	}
	if len(b.Offset) == 2 {
		n = n.Offset(b.Offset[0], b.Offset[1])
	}
	return n
}

package blueprint

import (
	"errors"
	"fmt"
	"strings"

	backer "github.com/ejjonny/backer-sub000"
)

// Node kinds accepted in a blueprint.
const (
	KindRow    = "row"
	KindColumn = "column"
	KindStack  = "stack"
	KindGroup  = "group"
	KindDraw   = "draw"
	KindSpace  = "space"
	KindEmpty  = "empty"
)

// Expand values.
const (
	ExpandX    = "x"
	ExpandY    = "y"
	ExpandBoth = "both"
)

// Blueprint is one node of a layout description. Optional sizes are pointers
// so that an explicit zero can be told apart from an unset field.
type Blueprint struct {
	Kind    string  `yaml:"kind" toml:"kind"`
	Label   string  `yaml:"label,omitempty" toml:"label,omitempty"`
	Spacing float32 `yaml:"spacing,omitempty" toml:"spacing,omitempty"`
	Align   string  `yaml:"align,omitempty" toml:"align,omitempty"`

	Pad         float32 `yaml:"pad,omitempty" toml:"pad,omitempty"`
	PadLeading  float32 `yaml:"pad_leading,omitempty" toml:"pad_leading,omitempty"`
	PadTrailing float32 `yaml:"pad_trailing,omitempty" toml:"pad_trailing,omitempty"`
	PadTop      float32 `yaml:"pad_top,omitempty" toml:"pad_top,omitempty"`
	PadBottom   float32 `yaml:"pad_bottom,omitempty" toml:"pad_bottom,omitempty"`

	// Offset is [dx, dy].
	Offset []float32 `yaml:"offset,omitempty" toml:"offset,omitempty"`

	Width     *float32 `yaml:"width,omitempty" toml:"width,omitempty"`
	Height    *float32 `yaml:"height,omitempty" toml:"height,omitempty"`
	RelWidth  *float32 `yaml:"rel_width,omitempty" toml:"rel_width,omitempty"`
	RelHeight *float32 `yaml:"rel_height,omitempty" toml:"rel_height,omitempty"`
	MinWidth  *float32 `yaml:"min_width,omitempty" toml:"min_width,omitempty"`
	MaxWidth  *float32 `yaml:"max_width,omitempty" toml:"max_width,omitempty"`
	MinHeight *float32 `yaml:"min_height,omitempty" toml:"min_height,omitempty"`
	MaxHeight *float32 `yaml:"max_height,omitempty" toml:"max_height,omitempty"`
	Aspect    float32  `yaml:"aspect,omitempty" toml:"aspect,omitempty"`
	Expand    string   `yaml:"expand,omitempty" toml:"expand,omitempty"`

	// Visible defaults to true. A hidden node behaves like a false conditional.
	Visible *bool `yaml:"visible,omitempty" toml:"visible,omitempty"`

	Children []Blueprint `yaml:"children,omitempty" toml:"children,omitempty"`
}

func (b *Blueprint) isContainer() bool {
	switch b.Kind {
	case KindRow, KindColumn, KindStack, KindGroup:
		return true
	}
	return false
}

func (b *Blueprint) hasModifiers() bool {
	return b.Align != "" || b.Pad != 0 || b.PadLeading != 0 || b.PadTrailing != 0 ||
		b.PadTop != 0 || b.PadBottom != 0 || len(b.Offset) != 0 ||
		b.Width != nil || b.Height != nil || b.RelWidth != nil || b.RelHeight != nil ||
		b.MinWidth != nil || b.MaxWidth != nil || b.MinHeight != nil || b.MaxHeight != nil ||
		b.Aspect != 0 || b.Expand != ""
}

// Validate reports every problem in the tree, each prefixed with the path of
// the offending node.
func (b *Blueprint) Validate() error {
	var errs []error
	if b.Kind == KindGroup {
		errs = append(errs, errors.New("root: group must be inside a container"))
	}
	b.validate("root", &errs)
	return errors.Join(errs...)
}

func (b *Blueprint) validate(path string, errs *[]error) {
	fail := func(format string, args ...any) {
		*errs = append(*errs, fmt.Errorf("%s: "+format, append([]any{path}, args...)...))
	}

	switch b.Kind {
	case KindRow, KindColumn, KindStack, KindGroup, KindDraw, KindSpace, KindEmpty:
	case "":
		fail("missing kind")
	default:
		fail("unknown kind %q", b.Kind)
	}
	if b.Align != "" {
		if _, err := backer.ParseAlign(b.Align); err != nil {
			fail("%v", err)
		}
	}
	if len(b.Offset) != 0 && len(b.Offset) != 2 {
		fail("offset needs 2 values, got %d", len(b.Offset))
	}
	if b.Aspect < 0 {
		fail("aspect must be positive, got %g", b.Aspect)
	}
	switch b.Expand {
	case "", ExpandX, ExpandY, ExpandBoth:
	default:
		fail("unknown expand %q", b.Expand)
	}
	if b.Width != nil && b.RelWidth != nil {
		fail("width and rel_width are exclusive")
	}
	if b.Height != nil && b.RelHeight != nil {
		fail("height and rel_height are exclusive")
	}
	if b.Kind == KindGroup && b.hasModifiers() {
		fail("group accepts no sizing, padding or offset")
	}
	if len(b.Children) > 0 && !b.isContainer() {
		fail("%s cannot have children", b.Kind)
	}

	for i := range b.Children {
		b.Children[i].validate(fmt.Sprintf("%s.children[%d]", path, i), errs)
	}
}

// Labels returns the labels of every draw node in tree order.
func (b *Blueprint) Labels() []string {
	var out []string
	b.walk(func(n *Blueprint) {
		if n.Kind == KindDraw {
			out = append(out, n.Label)
		}
	})
	return out
}

func (b *Blueprint) walk(fn func(*Blueprint)) {
	fn(b)
	for i := range b.Children {
		b.Children[i].walk(fn)
	}
}

// String summarizes the node for error messages.
func (b *Blueprint) String() string {
	var sb strings.Builder
	sb.WriteString(b.Kind)
	if b.Label != "" {
		fmt.Fprintf(&sb, " %q", b.Label)
	}
	if n := len(b.Children); n > 0 {
		fmt.Fprintf(&sb, " (%d children)", n)
	}
	return sb.String()
}

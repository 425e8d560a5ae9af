// Package layout holds the non-generic geometry and measurement algebra used by
// the backer layout engine.
//
// It defines [Rect], [Edges], [Align], [Value], the [Range] combinators
// ([Sum], [AdjacentPriority], [EqualPriority]) that fold child measurements
// into a parent's [Constraints], and [Distribute], which divides one axis of a
// Row or Column among its children. Types are re-exported through the root
// backer package for public consumption.
package layout

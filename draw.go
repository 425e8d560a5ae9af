package backer

// drawTree invokes the draw callbacks under n in tree order. It walks the
// tree with an explicit stack so deep trees do not grow the goroutine stack.
// Leaves whose rectangle has no positive area are skipped; transition leaves
// are always consulted.
func (n *Node[S]) drawTree(p *pass, state *S) {
	stack := []*Node[S]{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch top.kind {
		case KindDraw:
			if top.leaf != nil {
				top.leaf(p, top.rect, state)
				continue
			}
			if top.rect.IsEmpty() {
				p.skipped++
				continue
			}
			p.drawn++
			top.draw(top.rect, state)
		case KindScope:
			top.scope.draw(p, state)
		case KindPadding, KindOffset, KindExplicit:
			stack = append(stack, top.child)
		case KindRow, KindColumn, KindStack:
			for i := len(top.children) - 1; i >= 0; i-- {
				stack = append(stack, top.children[i])
			}
		case KindSpace, KindEmpty:
		default:
			invariant("%s node reached drawing", top.kind)
		}
	}
}

package world

// bspNode is one partition of the floor. Its rect edges are wall lines
// shared with neighbouring partitions; the root's far edges lie just off
// the floor.
type bspNode struct {
	rect        Rect
	depth       int
	vertical    bool // split line is the column x == split
	split       int
	left, right *bspNode
	room        Rect // carved interior, leaves only
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// partition recursively splits n until leaves are too small or too deep.
func (g *Generator) partition(n *bspNode) {
	if n.depth >= g.cfg.MaxDepth {
		return
	}

	w := n.rect.X2 - n.rect.X1
	h := n.rect.Y2 - n.rect.Y1
	canSplitX := w >= 2*g.cfg.MinLeafSize
	canSplitY := h >= 2*g.cfg.MinLeafSize

	switch {
	case canSplitX && canSplitY:
		// Cut across the long side when the node is clearly stretched.
		switch {
		case w*4 > h*5:
			n.vertical = true
		case h*4 > w*5:
			n.vertical = false
		default:
			n.vertical = g.rng.Intn(2) == 0
		}
	case canSplitX:
		n.vertical = true
	case canSplitY:
		n.vertical = false
	default:
		return
	}

	r := n.rect
	if n.vertical {
		n.split = g.rng.Range(r.X1+g.cfg.MinLeafSize, r.X2-g.cfg.MinLeafSize)
		n.left = &bspNode{rect: Rect{X1: r.X1, Y1: r.Y1, X2: n.split, Y2: r.Y2}, depth: n.depth + 1}
		n.right = &bspNode{rect: Rect{X1: n.split, Y1: r.Y1, X2: r.X2, Y2: r.Y2}, depth: n.depth + 1}
	} else {
		n.split = g.rng.Range(r.Y1+g.cfg.MinLeafSize, r.Y2-g.cfg.MinLeafSize)
		n.left = &bspNode{rect: Rect{X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: n.split}, depth: n.depth + 1}
		n.right = &bspNode{rect: Rect{X1: r.X1, Y1: n.split, X2: r.X2, Y2: r.Y2}, depth: n.depth + 1}
	}

	g.partition(n.left)
	g.partition(n.right)
}

// levels groups the tree breadth first, root level first.
func levels(root *bspNode) [][]*bspNode {
	var out [][]*bspNode
	current := []*bspNode{root}
	for len(current) > 0 {
		out = append(out, current)
		var next []*bspNode
		for _, n := range current {
			if !n.isLeaf() {
				next = append(next, n.left, n.right)
			}
		}
		current = next
	}
	return out
}

// rooms collects the carved interiors under n, left to right.
func (n *bspNode) rooms() []Rect {
	if n.isLeaf() {
		return []Rect{n.room}
	}
	return append(n.left.rooms(), n.right.rooms()...)
}

// carveRoom turns a leaf into a room one cell inside its partition.
func (g *Generator) carveRoom(m *Map, n *bspNode) {
	r := Rect{X1: n.rect.X1 + 1, Y1: n.rect.Y1 + 1, X2: n.rect.X2 - 1, Y2: n.rect.Y2 - 1}
	// Keep the outer ring of the floor as wall.
	r.X1 = max(r.X1, 1)
	r.Y1 = max(r.Y1, 1)
	if n.rect.X2 >= m.Width-1 {
		r.X2 = m.Width - 2
	}
	if n.rect.Y2 >= m.Height-1 {
		r.Y2 = m.Height - 2
	}

	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			g.setFloor(m, x, y)
		}
	}
	n.room = r
	m.Rooms = append(m.Rooms, r)
}

// connect joins the two children of n. A single door goes on the split line
// where rooms on both sides touch it; otherwise an L-shaped corridor runs
// between a room on each side with a door where it crosses the line.
func (g *Generator) connect(m *Map, n *bspNode) {
	var candidates []int
	if n.vertical {
		for y := n.rect.Y1 + 1; y < n.rect.Y2 && y < m.Height-1; y++ {
			if g.isFloor(m, n.split-1, y) && g.isFloor(m, n.split+1, y) {
				candidates = append(candidates, y)
			}
		}
	} else {
		for x := n.rect.X1 + 1; x < n.rect.X2 && x < m.Width-1; x++ {
			if g.isFloor(m, x, n.split-1) && g.isFloor(m, x, n.split+1) {
				candidates = append(candidates, x)
			}
		}
	}

	if len(candidates) > 0 {
		at := candidates[g.rng.Intn(len(candidates))]
		if n.vertical {
			g.setDoor(m, n.split, at)
		} else {
			g.setDoor(m, at, n.split)
		}
		return
	}

	leftRooms, rightRooms := n.left.rooms(), n.right.rooms()
	ax, ay := leftRooms[g.rng.Intn(len(leftRooms))].Center()
	bx, by := rightRooms[g.rng.Intn(len(rightRooms))].Center()

	if g.rng.Intn(2) == 0 {
		g.carveH(m, ax, bx, ay)
		g.carveV(m, ay, by, bx)
		if n.vertical {
			g.setDoor(m, n.split, ay)
		} else {
			g.setDoor(m, bx, n.split)
		}
	} else {
		g.carveV(m, ay, by, ax)
		g.carveH(m, ax, bx, by)
		if n.vertical {
			g.setDoor(m, n.split, by)
		} else {
			g.setDoor(m, ax, n.split)
		}
	}
}

func (g *Generator) carveH(m *Map, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		g.setFloor(m, x, y)
	}
}

func (g *Generator) carveV(m *Map, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		g.setFloor(m, x, y)
	}
}

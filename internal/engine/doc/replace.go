package doc

import "slices"

// ReplaceText replaces [from, to) with text. Both ends must lie inside the
// same textblock. The inserted text takes the marks of the run it is typed
// into (the run ending at from, or the first run when from is the start of
// the block).
func (n *Node) ReplaceText(from, to int, text string) (*Node, error) {
	if err := n.checkRange(from, to); err != nil {
		return nil, err
	}
	if n.inline {
		return n.withContent(replaceRuns(n.content, from, to, text)), nil
	}
	return n.replaceTextIn(0, from, to, text)
}

func (n *Node) replaceTextIn(base, from, to int, text string) (*Node, error) {
	pos := base
	for i, child := range n.content {
		start := pos + 1
		end := start + child.size
		pos += child.NodeSize()

		if from < start || to > end {
			continue
		}
		var (
			repl *Node
			err  error
		)
		if child.inline {
			repl = child.withContent(replaceRuns(child.content, from-start, to-start, text))
		} else {
			repl, err = child.replaceTextIn(start, from, to, text)
		}
		if err != nil {
			return nil, err
		}
		content := slices.Clone(n.content)
		content[i] = repl
		return n.withContent(content), nil
	}
	return nil, ErrNotTextblock
}

// ReplaceBlocks replaces the blocks between two sibling boundaries with the
// given blocks. An empty range inserts; no blocks deletes.
func (n *Node) ReplaceBlocks(from, to int, blocks ...*Node) (*Node, error) {
	if err := n.checkRange(from, to); err != nil {
		return nil, err
	}
	for _, b := range blocks {
		if b == nil || b.IsText() {
			return nil, ErrInlineBlock
		}
	}
	if n.inline {
		return nil, ErrNotBlockBoundary
	}
	return n.replaceBlocksIn(0, from, to, blocks)
}

func (n *Node) replaceBlocksIn(base, from, to int, blocks []*Node) (*Node, error) {
	first, last := -1, -1
	pos := base
	for i, child := range n.content {
		if pos == from {
			first = i
		}
		if pos == to {
			last = i
		}
		end := pos + child.NodeSize()
		if !child.inline && from > pos && to < end {
			repl, err := child.replaceBlocksIn(pos+1, from, to, blocks)
			if err != nil {
				return nil, err
			}
			content := slices.Clone(n.content)
			content[i] = repl
			return n.withContent(content), nil
		}
		pos = end
	}
	if pos == from {
		first = len(n.content)
	}
	if pos == to {
		last = len(n.content)
	}
	if first < 0 || last < 0 {
		return nil, ErrNotBlockBoundary
	}

	content := make([]*Node, 0, len(n.content)-(last-first)+len(blocks))
	content = append(content, n.content[:first]...)
	content = append(content, blocks...)
	content = append(content, n.content[last:]...)
	return n.withContent(content), nil
}

func (n *Node) checkRange(from, to int) error {
	if from > to {
		return ErrRangeInvalid
	}
	if from < 0 || to > n.size {
		return ErrOffsetOutOfRange
	}
	return nil
}

// replaceRuns rewrites inline content, with from and to relative to the start
// of the textblock content.
func replaceRuns(runs []*Node, from, to int, text string) []*Node {
	out := make([]*Node, 0, len(runs)+2)
	marks := insertMarks(runs, from)
	inserted := false
	pos := 0
	for _, r := range runs {
		start, end := pos, pos+r.size
		pos = end

		if start < from {
			out = append(out, Text(r.text[:min(end, from)-start], r.marks...))
		}
		if !inserted && end >= from && start <= from {
			out = append(out, Text(text, marks...))
			inserted = true
		}
		if end > to {
			out = append(out, Text(r.text[max(start, to)-start:], r.marks...))
		}
	}
	if !inserted {
		out = append(out, Text(text, marks...))
	}
	return normalizeRuns(out)
}

func insertMarks(runs []*Node, at int) []Mark {
	pos := 0
	for _, r := range runs {
		if at > pos && at <= pos+r.size {
			return r.marks
		}
		pos += r.size
	}
	if len(runs) > 0 && at == 0 {
		return runs[0].marks
	}
	return nil
}

package doc

import (
	"slices"
	"strconv"
	"strings"
)

// Kind identifies the type of a node.
type Kind uint8

const (
	KindDoc Kind = iota
	KindParagraph
	KindHeading
	KindCodeBlock
	KindBlockquote
	KindText
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindDoc:
		return "doc"
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindCodeBlock:
		return "code_block"
	case KindBlockquote:
		return "blockquote"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Mark is an inline annotation on a text run.
type Mark string

// Common marks.
const (
	MarkStrong Mark = "strong"
	MarkEm     Mark = "em"
	MarkCode   Mark = "code"
	MarkLink   Mark = "link"
)

// Node is an immutable document node.
type Node struct {
	kind    Kind
	text    string
	marks   []Mark
	content []*Node
	inline  bool // content is text runs
	size    int  // content size, cached at construction
}

// Text creates a text run with the given marks.
func Text(text string, marks ...Mark) *Node {
	return &Node{kind: KindText, text: text, marks: normalizeMarks(marks), size: len(text)}
}

// Paragraph creates a paragraph holding the given text runs.
func Paragraph(runs ...*Node) *Node {
	return newTextblock(KindParagraph, runs)
}

// Heading creates a heading holding the given text runs.
func Heading(runs ...*Node) *Node {
	return newTextblock(KindHeading, runs)
}

// CodeBlock creates a code block holding the given text runs.
func CodeBlock(runs ...*Node) *Node {
	return newTextblock(KindCodeBlock, runs)
}

// Blockquote creates a blockquote holding the given blocks.
func Blockquote(blocks ...*Node) *Node {
	return newContainer(KindBlockquote, blocks)
}

// Doc creates a document root holding the given blocks.
func Doc(blocks ...*Node) *Node {
	return newContainer(KindDoc, blocks)
}

// Plain creates a document root whose content is a single unmarked text run.
// Positions in a plain document are byte offsets into text.
func Plain(text string) *Node {
	return newTextblock(KindDoc, []*Node{Text(text)})
}

// Paragraphs creates a document with one paragraph per line.
func Paragraphs(lines ...string) *Node {
	blocks := make([]*Node, len(lines))
	for i, line := range lines {
		blocks[i] = Paragraph(Text(line))
	}
	return Doc(blocks...)
}

func newTextblock(kind Kind, runs []*Node) *Node {
	n := &Node{kind: kind, inline: true, content: normalizeRuns(runs)}
	n.size = contentSize(n.content)
	return n
}

func newContainer(kind Kind, blocks []*Node) *Node {
	content := make([]*Node, 0, len(blocks))
	for _, b := range blocks {
		if b != nil && !b.IsText() {
			content = append(content, b)
		}
	}
	n := &Node{kind: kind, content: content}
	n.size = contentSize(content)
	return n
}

// withContent returns a copy of n with new content, keeping its kind.
func (n *Node) withContent(content []*Node) *Node {
	if n.inline {
		return newTextblock(n.kind, content)
	}
	return newContainer(n.kind, content)
}

// Kind returns the node kind.
func (n *Node) Kind() Kind {
	return n.kind
}

// IsText reports whether n is a text run.
func (n *Node) IsText() bool {
	return n.kind == KindText
}

// IsTextblock reports whether n holds inline text runs.
func (n *Node) IsTextblock() bool {
	return n.inline
}

// Text returns the text of a text run, or "" for other nodes.
func (n *Node) Text() string {
	return n.text
}

// Marks returns the marks of a text run.
func (n *Node) Marks() []Mark {
	return slices.Clone(n.marks)
}

// HasMark reports whether a text run carries the given mark.
func (n *Node) HasMark(m Mark) bool {
	return slices.Contains(n.marks, m)
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	return len(n.content)
}

// Child returns the i-th direct child.
func (n *Node) Child(i int) *Node {
	return n.content[i]
}

// ContentSize returns the number of positions inside the node.
func (n *Node) ContentSize() int {
	return n.size
}

// NodeSize returns the number of positions the node occupies in its parent.
func (n *Node) NodeSize() int {
	if n.IsText() {
		return n.size
	}
	return n.size + 2
}

// TextContent returns the concatenated text of all runs in the subtree.
func (n *Node) TextContent() string {
	if n.IsText() {
		return n.text
	}
	var sb strings.Builder
	n.Descendants(func(child *Node, _ int) bool {
		if child.IsText() {
			sb.WriteString(child.text)
		}
		return true
	})
	return sb.String()
}

// Descendants calls fn for every node below n in document order, passing the
// absolute position at which the node starts. Returning false from fn skips
// the node's children.
func (n *Node) Descendants(fn func(node *Node, pos int) bool) {
	n.descend(0, fn)
}

func (n *Node) descend(base int, fn func(node *Node, pos int) bool) {
	pos := base
	for _, child := range n.content {
		if fn(child, pos) && !child.IsText() {
			child.descend(pos+1, fn)
		}
		pos += child.NodeSize()
	}
}

// TextBetween returns the text of all runs intersecting [from, to).
// Block boundaries contribute nothing.
func (n *Node) TextBetween(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > n.size {
		to = n.size
	}
	if from >= to {
		return ""
	}

	var sb strings.Builder
	n.Descendants(func(child *Node, pos int) bool {
		end := pos + child.NodeSize()
		if end <= from || pos >= to {
			return false
		}
		if child.IsText() {
			start := max(from, pos) - pos
			stop := min(to, end) - pos
			sb.WriteString(child.text[start:stop])
		}
		return true
	})
	return sb.String()
}

// Equal reports whether two trees have the same structure, text and marks.
func (n *Node) Equal(other *Node) bool {
	if n == other {
		return true
	}
	if n == nil || other == nil {
		return false
	}
	if n.kind != other.kind || n.inline != other.inline || n.text != other.text ||
		!slices.Equal(n.marks, other.marks) || len(n.content) != len(other.content) {
		return false
	}
	for i := range n.content {
		if !n.content[i].Equal(other.content[i]) {
			return false
		}
	}
	return true
}

// String returns a compact representation such as doc(paragraph("a", strong("b"))).
func (n *Node) String() string {
	if n.IsText() {
		s := strconv.Quote(n.text)
		for i := len(n.marks) - 1; i >= 0; i-- {
			s = string(n.marks[i]) + "(" + s + ")"
		}
		return s
	}
	parts := make([]string, len(n.content))
	for i, child := range n.content {
		parts[i] = child.String()
	}
	return n.kind.String() + "(" + strings.Join(parts, ", ") + ")"
}

func contentSize(content []*Node) int {
	size := 0
	for _, c := range content {
		size += c.NodeSize()
	}
	return size
}

func normalizeMarks(marks []Mark) []Mark {
	if len(marks) == 0 {
		return nil
	}
	out := slices.Clone(marks)
	slices.Sort(out)
	return slices.Compact(out)
}

// normalizeRuns drops empty and non-text nodes and merges neighbours that
// carry identical marks.
func normalizeRuns(runs []*Node) []*Node {
	out := make([]*Node, 0, len(runs))
	for _, r := range runs {
		if r == nil || !r.IsText() || r.text == "" {
			continue
		}
		if last := len(out) - 1; last >= 0 && slices.Equal(out[last].marks, r.marks) {
			out[last] = Text(out[last].text+r.text, out[last].marks...)
			continue
		}
		out = append(out, r)
	}
	return out
}

// Package doc provides the immutable structured document tree edited by the
// engine.
//
// A document is a tree of block nodes (paragraphs, headings, code blocks,
// blockquotes) whose leaves are text runs. Each text run carries a set of
// marks (strong, em, code, ...); adjacent runs with identical marks are always
// merged when a node is built.
//
// # Positions
//
// Positions follow the same scheme as ProseMirror-style editors. A text run
// occupies len(text) positions (UTF-8 bytes). Every other node occupies two
// positions for its boundaries plus the size of its content. Position 0 is
// the start of the document content, and the last valid position is
// ContentSize():
//
//	doc(paragraph("ab"), paragraph("cd"))
//	   0   1 a 2 b 3   4   5 c 6 d 7   8
//
// A Plain document holds inline content directly, so its positions are
// plain byte offsets into its text.
//
// # Editing
//
// Nodes are never modified. ReplaceText and ReplaceBlocks return a new root
// that shares every untouched subtree with the original.
package doc

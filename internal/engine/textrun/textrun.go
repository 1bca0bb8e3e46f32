// Package textrun flattens a document into the contiguous text spans that
// searches run over.
package textrun

import (
	"strings"

	"github.com/dshills/quarry/internal/engine/doc"
)

// Run is a contiguous span of document text starting at Start.
type Run struct {
	Start int
	Text  string
}

// End returns the position just past the run.
func (r Run) End() int {
	return r.Start + len(r.Text)
}

// Merged returns the text runs of d in document order. Text nodes that touch
// (differently marked runs of one textblock) are merged so a match is never
// split at a mark boundary. Block boundaries always separate runs.
func Merged(d *doc.Node) []Run {
	var (
		runs []Run
		cur  strings.Builder
		run  Run
		open bool
	)
	flush := func() {
		if open {
			run.Text = cur.String()
			runs = append(runs, run)
			cur.Reset()
			open = false
		}
	}

	d.Descendants(func(n *doc.Node, pos int) bool {
		if !n.IsText() {
			return true
		}
		if open && run.Start+cur.Len() != pos {
			flush()
		}
		if !open {
			run = Run{Start: pos}
			open = true
		}
		cur.WriteString(n.Text())
		return false
	})
	flush()
	return runs
}

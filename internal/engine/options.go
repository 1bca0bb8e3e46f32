package engine

import (
	"github.com/charmbracelet/log"

	"github.com/dshills/quarry/internal/engine/cursor"
	"github.com/dshills/quarry/internal/engine/doc"
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithDoc sets the initial document.
func WithDoc(d *doc.Node) Option {
	return func(e *Engine) {
		if d != nil {
			e.initDoc = d
		}
	}
}

// WithContent sets the initial document to a plain document holding content.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initDoc = doc.Plain(content)
	}
}

// WithSelection sets the initial selection.
func WithSelection(sel cursor.Selection) Option {
	return func(e *Engine) {
		e.initSel = sel
	}
}

// WithPlugins registers plugins in the given order.
func WithPlugins(plugins ...Plugin) Option {
	return func(e *Engine) {
		e.plugins = append(e.plugins, plugins...)
	}
}

// WithScrollHandler sets the function called with the new selection whenever
// a dispatched transaction requests scroll-into-view.
func WithScrollHandler(fn func(cursor.Selection)) Option {
	return func(e *Engine) {
		e.onScroll = fn
	}
}

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

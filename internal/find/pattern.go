package find

import (
	"regexp"
	"unicode/utf8"

	"go.elara.ws/pcre"
)

// PatternEngine selects the regular expression implementation.
type PatternEngine string

const (
	// EngineRE2 uses Go's regexp package (linear time, no backreferences).
	EngineRE2 PatternEngine = "re2"
	// EnginePCRE uses PCRE2 semantics, adding lookaround and backreferences.
	EnginePCRE PatternEngine = "pcre"
)

// Valid reports whether e names a known engine.
func (e PatternEngine) Valid() bool {
	return e == EngineRE2 || e == EnginePCRE
}

// pattern is a compiled search term. Both methods are built from the same
// source, so the scan and the selection test cannot disagree.
type pattern interface {
	// findAll returns the [start, end) byte offsets of successive matches.
	// Each search resumes where the previous match ended and sees the full
	// text as context. The list stops at, and includes, the first empty match.
	findAll(text string) [][]int
	// matchesAll reports whether text as a whole is one match.
	matchesAll(text string) bool
	close()
}

// storedTerm returns the term as kept in the search state: literal searches
// have every metacharacter escaped.
func storedTerm(term string, regex bool) string {
	if regex {
		return term
	}
	return regexp.QuoteMeta(term)
}

func compilePattern(kind PatternEngine, term string, caseSensitive bool) (pattern, error) {
	var (
		p   pattern
		err error
	)
	switch kind {
	case EnginePCRE:
		p, err = compilePCRE(term, caseSensitive)
	default:
		kind = EngineRE2
		p, err = compileRE2(term, caseSensitive)
	}
	if err != nil {
		return nil, &PatternError{Pattern: term, Engine: kind, Err: err}
	}
	return p, nil
}

func anchored(term string) string {
	return `\A(?:` + term + `)\z`
}

type re2Pattern struct {
	scan  *regexp.Regexp
	tail  *regexp.Regexp // one rune of left context, then the term as group 1
	whole *regexp.Regexp
}

func compileRE2(term string, caseSensitive bool) (*re2Pattern, error) {
	flags := ""
	if !caseSensitive {
		flags = "(?i)"
	}
	scan, err := regexp.Compile(flags + term)
	if err != nil {
		return nil, err
	}
	tail, err := regexp.Compile(flags + `(?s:.)(` + term + `)`)
	if err != nil {
		return nil, err
	}
	whole, err := regexp.Compile(flags + anchored(term))
	if err != nil {
		return nil, err
	}
	return &re2Pattern{scan: scan, tail: tail, whole: whole}, nil
}

func (p *re2Pattern) findAll(text string) [][]int {
	var out [][]int
	pos := 0
	for pos <= len(text) {
		loc := p.next(text, pos)
		if loc == nil {
			break
		}
		out = append(out, loc)
		if loc[0] == loc[1] {
			break
		}
		pos = loc[1]
	}
	return out
}

// next returns the leftmost match starting at or after pos. Past the start
// the search begins one rune early so word boundaries see the real text.
func (p *re2Pattern) next(text string, pos int) []int {
	if pos == 0 {
		return p.scan.FindStringIndex(text)
	}
	_, w := utf8.DecodeLastRuneInString(text[:pos])
	base := pos - w
	loc := p.tail.FindStringSubmatchIndex(text[base:])
	if loc == nil {
		return nil
	}
	return []int{base + loc[2], base + loc[3]}
}

func (p *re2Pattern) matchesAll(text string) bool {
	return p.whole.MatchString(text)
}

func (p *re2Pattern) close() {}

// pcrePattern finds match starts with a lookahead that records where the
// term ends in a trailing empty group. Every hit consumes one byte, so the
// library never drops an empty match.
type pcrePattern struct {
	starts *pcre.Regexp
	whole  *pcre.Regexp
}

func compilePCRE(term string, caseSensitive bool) (*pcrePattern, error) {
	var opts pcre.CompileOption
	if !caseSensitive {
		opts |= pcre.Caseless
	}
	starts, err := pcre.CompileOpts(`(?=(?:`+term+`)())(?s:.)`, opts)
	if err != nil {
		return nil, err
	}
	whole, err := pcre.CompileOpts(anchored(term), opts)
	if err != nil {
		starts.Close()
		return nil, err
	}
	return &pcrePattern{starts: starts, whole: whole}, nil
}

func (p *pcrePattern) findAll(text string) [][]int {
	var out [][]int
	last := 0
	for _, m := range p.starts.FindAllSubmatchIndex([]byte(text), -1) {
		start, end := m[0], m[len(m)-2]
		if start < last {
			continue
		}
		out = append(out, []int{start, end})
		if start == end {
			break
		}
		last = end
	}
	return out
}

func (p *pcrePattern) matchesAll(text string) bool {
	return p.whole.Match([]byte(text))
}

func (p *pcrePattern) close() {
	p.starts.Close()
	p.whole.Close()
}

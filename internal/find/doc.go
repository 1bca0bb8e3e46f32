// Package find implements incremental search, match highlighting, cyclic
// navigation and replace over an engine document.
//
// A [Session] owns the search state of one document and the set of result
// ranges. It is registered with the document's engine as a plugin and keeps
// the results in step with every transaction:
//
//   - Transactions tagged with [OriginSearch] (issued by Find, Clear, Replace
//     and ReplaceAll) rescan the whole document.
//   - Other document edits move the existing ranges through the edit's
//     position mapping. Ranges squeezed to nothing are dropped. New text is
//     not searched until the next Find.
//   - Selection-only transactions leave the results alone.
//
// # Usage
//
//	e := engine.New(engine.WithContent("cat bat cat"))
//	f := find.NewFinder(e)
//
//	f.Find("cat", find.SearchOptions{Wrap: true})
//	f.MatchCount()  // 2
//	f.SelectFirst() // selects [0:3)
//	f.SelectNext()  // selects [8:11)
//	f.SelectNext()  // wraps to [0:3)
//	f.ReplaceAll("dog")
//	e.Text()        // "dog bat dog"
//
// Every operation is also available as an [engine.Command] on the Session,
// so callers can check whether it would succeed without dispatching:
//
//	if e.Can(s.Replace("dog")) { ... }
//
// # Patterns
//
// Literal terms have their metacharacters escaped and are matched as
// substrings. With Regex set the term is a regular expression for the
// session's [PatternEngine]. Matching ignores case unless CaseSensitive is
// set. Offsets are UTF-8 byte positions in engine coordinates.
package find

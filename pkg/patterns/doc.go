// Package patterns provides a read-only catalog of pre-written regular
// expressions grouped by category (emails, URLs, dates, IP addresses, credit
// cards and more), compiled once and exposed for lookup and matching.
//
// # Architecture
//
// The catalog is a two-level mapping: Category -> pattern name -> *Entry. It is
// built from a fixed table of Definition values. Every definition is compiled
// during construction; a definition that does not compile, or that collides
// with another (category, name) pair, aborts construction with a *BuildError.
// A partially valid Registry is never returned.
//
// Most patterns compile under Go's linear-time regexp package (RE2). The few
// that rely on lookahead or backreferences use github.com/dlclark/regexp2 in
// ECMAScript mode, bounded by a per-call match timeout.
//
// # Usage
//
//	ok, err := patterns.Test(patterns.Emails, "email", "jane@example.com")
//	if err != nil {
//	    // errors.Is(err, patterns.ErrNotFound): unknown category or name
//	}
//
//	m, _ := patterns.Match(patterns.HTML, "htmlTags", "x<div>y")
//	if m != nil {
//	    fmt.Println(m.Text) // "<div>"
//	}
//
// A custom registry can be built with options:
//
//	cfg, err := patterns.LoadConfig()
//	if err != nil {
//	    return err
//	}
//	reg, err := patterns.New(
//	    patterns.WithConfig(cfg),
//	    patterns.WithLogger(slog.Default()),
//	)
//
// # Match Semantics
//
// Matching is exactly what each authored pattern says. Validators such as
// dates.dateYYYYMMDD are anchored with ^ and $ and only accept whole inputs.
// Search patterns such as html.htmlTags are unanchored and match substrings.
// The registry never adds or strips anchors and never trims or case-folds
// input. Each entry is tagged with its intended Mode so callers do not have to
// infer it from the source text.
//
// # Error Handling
//
// Lookups on an unknown category or name return a *NotFoundError that wraps
// ErrCategoryNotFound or ErrPatternNotFound, both of which wrap ErrNotFound.
// Matching itself never fails: a non-match is reported as false or nil.
//
// # Thread Safety
//
// A Registry is immutable after construction and safe for concurrent use
// without locking.
package patterns

package patterns

import (
	"log/slog"
	"strings"
)

// Category names a group of related patterns.
type Category string

const (
	Emails       Category = "emails"
	URLs         Category = "urls"
	PhoneNumbers Category = "phoneNumbers"
	PostalCodes  Category = "postalCodes"
	Dates        Category = "dates"
	Text         Category = "text"
	HTML         Category = "html"
	Files        Category = "files"
	IPs          Category = "ips"
	CreditCards  Category = "creditCards"
	Others       Category = "others"
)

// Flags are per-entry pattern modifiers.
type Flags uint8

const (
	// FlagGlobal makes Replace substitute every match instead of the first one.
	FlagGlobal Flags = 1 << iota
	// FlagIgnoreCase compiles the pattern case-insensitively.
	FlagIgnoreCase
	// FlagMultiline lets ^ and $ match at line boundaries.
	FlagMultiline

	allFlags = FlagGlobal | FlagIgnoreCase | FlagMultiline
)

// Has reports whether all bits of f2 are set in f.
func (f Flags) Has(f2 Flags) bool { return f&f2 == f2 }

// Names returns the flag names in a fixed order.
func (f Flags) Names() []string {
	var names []string
	if f.Has(FlagGlobal) {
		names = append(names, "global")
	}
	if f.Has(FlagIgnoreCase) {
		names = append(names, "ignoreCase")
	}
	if f.Has(FlagMultiline) {
		names = append(names, "multiline")
	}
	return names
}

func (f Flags) String() string { return strings.Join(f.Names(), "|") }

// Mode tags how an entry is meant to be used. It is informational only and
// never changes how the pattern matches.
type Mode uint8

const (
	// ModeValidate marks patterns anchored to accept whole inputs only.
	ModeValidate Mode = iota
	// ModeSearch marks patterns that locate substrings.
	ModeSearch
)

func (m Mode) String() string {
	if m == ModeSearch {
		return "search"
	}
	return "validate"
}

// Engine selects the regex implementation an entry is compiled with.
type Engine uint8

const (
	// EngineRE2 uses the standard library's linear-time regexp package.
	EngineRE2 Engine = iota
	// EngineBacktrack uses regexp2 in ECMAScript mode, for lookaround and
	// backreferences. Matches are bounded by the registry's match timeout.
	EngineBacktrack
)

func (e Engine) String() string {
	if e == EngineBacktrack {
		return "backtrack"
	}
	return "re2"
}

// Definition is one row of a pattern table.
type Definition struct {
	Category    Category
	Name        string
	Source      string
	Flags       Flags
	Mode        Mode
	Engine      Engine
	Description string
}

// Result describes a successful match.
type Result struct {
	// Text is the matched substring.
	Text string
	// Index holds the byte offsets of Text within the input.
	Index [2]int
	// Groups holds the capture groups in order. Groups that did not
	// participate in the match are empty strings.
	Groups []string
}

// Entry is a compiled, named pattern. Entries are immutable.
type Entry struct {
	def      Definition
	m        matcher
	maxInput int
	log      *slog.Logger
}

// Category returns the category the entry is registered under.
func (e *Entry) Category() Category { return e.def.Category }

// Name returns the entry name, unique within its category.
func (e *Entry) Name() string { return e.def.Name }

// Source returns the pattern text as authored, without inline flags.
func (e *Entry) Source() string { return e.def.Source }

// Flags returns the entry's pattern modifiers.
func (e *Entry) Flags() Flags { return e.def.Flags }

// Mode returns the intended match mode (validate or search).
func (e *Entry) Mode() Mode { return e.def.Mode }

// Engine returns the regex implementation the entry is compiled with.
func (e *Entry) Engine() Engine { return e.def.Engine }

// Description returns the one-line summary of what the pattern matches.
func (e *Entry) Description() string { return e.def.Description }

// Definition returns a copy of the table row the entry was built from.
func (e *Entry) Definition() Definition { return e.def }

// String returns the qualified name, e.g. "emails.email".
func (e *Entry) String() string { return string(e.def.Category) + "." + e.def.Name }

// Test reports whether input matches the pattern as authored.
func (e *Entry) Test(input string) bool {
	return e.Match(input) != nil
}

// Match returns the leftmost match in input, or nil if there is none.
func (e *Entry) Match(input string) *Result {
	if !e.allowed(input) {
		return nil
	}
	m, err := e.m.find(input)
	if err != nil {
		e.aborted(err)
		return nil
	}
	return m
}

// FindAll returns up to n successive non-overlapping matches. n < 0 means
// all matches.
func (e *Entry) FindAll(input string, n int) []Result {
	if n == 0 || !e.allowed(input) {
		return nil
	}
	ms, err := e.m.findAll(input, n)
	if err != nil {
		e.aborted(err)
		return nil
	}
	return ms
}

// Replace substitutes repl for the first match, or for every match when the
// entry carries FlagGlobal. repl is inserted literally.
func (e *Entry) Replace(input, repl string) string {
	n := 1
	if e.def.Flags.Has(FlagGlobal) {
		n = -1
	}
	ms := e.FindAll(input, n)
	if len(ms) == 0 {
		return input
	}

	var b strings.Builder
	b.Grow(len(input))
	last := 0
	for _, m := range ms {
		b.WriteString(input[last:m.Index[0]])
		b.WriteString(repl)
		last = m.Index[1]
	}
	b.WriteString(input[last:])
	return b.String()
}

func (e *Entry) allowed(input string) bool {
	if e.maxInput > 0 && len(input) > e.maxInput {
		e.log.Warn("input exceeds length budget, treating as no match",
			slog.String("pattern", e.String()),
			slog.Int("length", len(input)),
			slog.Int("limit", e.maxInput),
		)
		return false
	}
	return true
}

func (e *Entry) aborted(err error) {
	e.log.Warn("pattern match aborted, treating as no match",
		slog.String("pattern", e.String()),
		slog.String("error", err.Error()),
	)
}

package patterns

import (
	"log/slog"
	"slices"
	"strings"
)

// Registry is an immutable mapping of category -> name -> *Entry.
type Registry struct {
	entries    map[Category]map[string]*Entry
	categories []Category
}

// New builds a registry from the built-in pattern table.
func New(opts ...Option) (*Registry, error) {
	return NewFromDefinitions(builtin, opts...)
}

// MustNew works like New but panics if the table is defective.
func MustNew(opts ...Option) *Registry {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// NewFromDefinitions compiles defs into a registry. Every definition is
// checked; if any is defective a *BuildError describing all of them is
// returned and no registry is built.
func NewFromDefinitions(defs []Definition, opts ...Option) (*Registry, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	entries := make(map[Category]map[string]*Entry)
	var defects []error

	for _, def := range defs {
		if def.Category == "" || def.Name == "" || def.Flags&^allFlags != 0 || def.Mode > ModeSearch || def.Engine > EngineBacktrack {
			defects = append(defects, defect(def, ErrInvalidDefinition, nil))
			continue
		}
		if _, dup := entries[def.Category][def.Name]; dup {
			defects = append(defects, defect(def, ErrDuplicatePattern, nil))
			continue
		}

		m, err := compile(def, o.matchTimeout)
		if err != nil {
			defects = append(defects, defect(def, ErrInvalidPattern, err))
			continue
		}

		byName, ok := entries[def.Category]
		if !ok {
			byName = make(map[string]*Entry)
			entries[def.Category] = byName
		}
		byName[def.Name] = &Entry{
			def:      def,
			m:        m,
			maxInput: o.maxInputLength,
			log:      o.logger,
		}
	}

	if len(defects) > 0 {
		o.logger.Error("pattern registry build failed", slog.Int("defects", len(defects)))
		return nil, &BuildError{Defects: defects}
	}

	categories := make([]Category, 0, len(entries))
	for c := range entries {
		categories = append(categories, c)
	}
	slices.Sort(categories)

	o.logger.Debug("pattern registry built",
		slog.Int("categories", len(categories)),
		slog.Int("patterns", len(defs)),
	)

	return &Registry{entries: entries, categories: categories}, nil
}

// Get returns the entry registered under category and name.
func (r *Registry) Get(category Category, name string) (*Entry, error) {
	byName, ok := r.entries[category]
	if !ok {
		return nil, categoryNotFound(category, name)
	}
	e, ok := byName[name]
	if !ok {
		return nil, patternNotFound(category, name)
	}
	return e, nil
}

// Categories returns every category name in sorted order.
func (r *Registry) Categories() []Category {
	return slices.Clone(r.categories)
}

// NamesIn returns the pattern names of a category in sorted order.
func (r *Registry) NamesIn(category Category) ([]string, error) {
	byName, ok := r.entries[category]
	if !ok {
		return nil, categoryNotFound(category, "")
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// Entries returns every entry ordered by category, then name.
func (r *Registry) Entries() []*Entry {
	out := make([]*Entry, 0, r.Len())
	for _, byName := range r.entries {
		for _, e := range byName {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b *Entry) int {
		if c := strings.Compare(string(a.def.Category), string(b.def.Category)); c != 0 {
			return c
		}
		return strings.Compare(a.def.Name, b.def.Name)
	})
	return out
}

// Len returns the total number of entries.
func (r *Registry) Len() int {
	n := 0
	for _, byName := range r.entries {
		n += len(byName)
	}
	return n
}

// Test reports whether input matches the named pattern.
func (r *Registry) Test(category Category, name, input string) (bool, error) {
	e, err := r.Get(category, name)
	if err != nil {
		return false, err
	}
	return e.Test(input), nil
}

// Match returns the first match of the named pattern in input, or nil.
func (r *Registry) Match(category Category, name, input string) (*Result, error) {
	e, err := r.Get(category, name)
	if err != nil {
		return nil, err
	}
	return e.Match(input), nil
}

// FindAll returns up to n matches of the named pattern; n < 0 means all.
func (r *Registry) FindAll(category Category, name, input string, n int) ([]Result, error) {
	e, err := r.Get(category, name)
	if err != nil {
		return nil, err
	}
	return e.FindAll(input, n), nil
}

// Replace substitutes repl for matches of the named pattern. See Entry.Replace.
func (r *Registry) Replace(category Category, name, input, repl string) (string, error) {
	e, err := r.Get(category, name)
	if err != nil {
		return "", err
	}
	return e.Replace(input, repl), nil
}

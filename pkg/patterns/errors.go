package patterns

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is the base error for lookups of unknown categories or patterns.
	ErrNotFound = errors.New("not found")

	// ErrCategoryNotFound is returned when the requested category does not exist.
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)

	// ErrPatternNotFound is returned when the category exists but the name does not.
	ErrPatternNotFound = fmt.Errorf("pattern %w", ErrNotFound)

	// ErrBuild is returned when the registry cannot be constructed.
	ErrBuild = errors.New("failed to build pattern registry")

	// ErrInvalidPattern marks a definition whose source fails to compile.
	ErrInvalidPattern = errors.New("pattern does not compile")

	// ErrDuplicatePattern marks a definition that reuses a (category, name) pair.
	ErrDuplicatePattern = errors.New("duplicate pattern name in category")

	// ErrInvalidDefinition marks a definition with an empty key or unknown flags, mode or engine.
	ErrInvalidDefinition = errors.New("invalid pattern definition")

	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnvFile is returned when an explicitly requested .env file cannot be read.
	ErrLoadingEnvFile = errors.New("failed to load env file")
)

// NotFoundError carries the category and name of a failed lookup.
type NotFoundError struct {
	Category Category
	Name     string

	err error
}

func (e *NotFoundError) Error() string {
	if errors.Is(e.err, ErrCategoryNotFound) {
		return fmt.Sprintf("%s: %q", e.err, e.Category)
	}
	return fmt.Sprintf("%s: %q in category %q", e.err, e.Name, e.Category)
}

func (e *NotFoundError) Unwrap() error { return e.err }

func categoryNotFound(category Category, name string) error {
	return &NotFoundError{Category: category, Name: name, err: ErrCategoryNotFound}
}

func patternNotFound(category Category, name string) error {
	return &NotFoundError{Category: category, Name: name, err: ErrPatternNotFound}
}

// BuildError lists every defective definition found while constructing a registry.
type BuildError struct {
	Defects []error
}

func (e *BuildError) Error() string {
	parts := make([]string, 0, len(e.Defects))
	for _, d := range e.Defects {
		parts = append(parts, d.Error())
	}
	return ErrBuild.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap exposes ErrBuild and every defect to errors.Is and errors.As.
func (e *BuildError) Unwrap() []error {
	return append([]error{ErrBuild}, e.Defects...)
}

func defect(def Definition, cause error, detail error) error {
	if detail != nil {
		return fmt.Errorf("%s.%s: %w: %v", def.Category, def.Name, cause, detail)
	}
	return fmt.Errorf("%s.%s: %w", def.Category, def.Name, cause)
}

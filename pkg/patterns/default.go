package patterns

// std is built during package initialization so a defective built-in table
// fails at startup rather than on first use.
var std = MustNew()

// Default returns the process-wide registry of built-in patterns.
func Default() *Registry { return std }

// Get looks up a built-in pattern. See Registry.Get.
func Get(category Category, name string) (*Entry, error) {
	return std.Get(category, name)
}

// Categories lists the built-in categories.
func Categories() []Category {
	return std.Categories()
}

// NamesIn lists the built-in pattern names of a category.
func NamesIn(category Category) ([]string, error) {
	return std.NamesIn(category)
}

// Test matches input against a built-in pattern.
func Test(category Category, name, input string) (bool, error) {
	return std.Test(category, name, input)
}

// Match returns the first match of a built-in pattern in input, or nil.
func Match(category Category, name, input string) (*Result, error) {
	return std.Match(category, name, input)
}

// FindAll returns up to n matches of a built-in pattern; n < 0 means all.
func FindAll(category Category, name, input string, n int) ([]Result, error) {
	return std.FindAll(category, name, input, n)
}

// Replace substitutes repl for matches of a built-in pattern.
func Replace(category Category, name, input, repl string) (string, error) {
	return std.Replace(category, name, input, repl)
}

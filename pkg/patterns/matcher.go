package patterns

import (
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

type matcher interface {
	find(input string) (*Result, error)
	findAll(input string, n int) ([]Result, error)
}

func compile(def Definition, timeout time.Duration) (matcher, error) {
	switch def.Engine {
	case EngineRE2:
		prefix := ""
		if def.Flags.Has(FlagIgnoreCase) {
			prefix += "i"
		}
		if def.Flags.Has(FlagMultiline) {
			prefix += "m"
		}
		src := def.Source
		if prefix != "" {
			src = "(?" + prefix + ")" + src
		}
		re, err := regexp.Compile(src)
		if err != nil {
			return nil, err
		}
		return re2Matcher{re: re}, nil

	case EngineBacktrack:
		opts := regexp2.RegexOptions(regexp2.ECMAScript)
		if def.Flags.Has(FlagIgnoreCase) {
			opts |= regexp2.IgnoreCase
		}
		if def.Flags.Has(FlagMultiline) {
			opts |= regexp2.Multiline
		}
		re, err := regexp2.Compile(def.Source, opts)
		if err != nil {
			return nil, err
		}
		if timeout > 0 {
			re.MatchTimeout = timeout
		}
		return backtrackMatcher{re: re}, nil
	}
	return nil, ErrInvalidDefinition
}

type re2Matcher struct {
	re *regexp.Regexp
}

func (m re2Matcher) find(input string) (*Result, error) {
	loc := m.re.FindStringSubmatchIndex(input)
	if loc == nil {
		return nil, nil
	}
	res := matchFromIndex(input, loc)
	return &res, nil
}

func (m re2Matcher) findAll(input string, n int) ([]Result, error) {
	locs := m.re.FindAllStringSubmatchIndex(input, n)
	if len(locs) == 0 {
		return nil, nil
	}
	out := make([]Result, 0, len(locs))
	for _, loc := range locs {
		out = append(out, matchFromIndex(input, loc))
	}
	return out, nil
}

func matchFromIndex(input string, loc []int) Result {
	res := Result{
		Text:   input[loc[0]:loc[1]],
		Index:  [2]int{loc[0], loc[1]},
		Groups: make([]string, 0, len(loc)/2-1),
	}
	for i := 2; i+1 < len(loc); i += 2 {
		if loc[i] < 0 {
			res.Groups = append(res.Groups, "")
			continue
		}
		res.Groups = append(res.Groups, input[loc[i]:loc[i+1]])
	}
	return res
}

// backtrackMatcher reports offsets in runes; they are converted to byte
// offsets so both engines share the same Result contract.
type backtrackMatcher struct {
	re *regexp2.Regexp
}

func (m backtrackMatcher) find(input string) (*Result, error) {
	rm, err := m.re.FindStringMatch(input)
	if err != nil || rm == nil {
		return nil, err
	}
	res := matchFromRegexp2(newRuneOffsets(input), rm)
	return &res, nil
}

func (m backtrackMatcher) findAll(input string, n int) ([]Result, error) {
	rm, err := m.re.FindStringMatch(input)
	if err != nil || rm == nil {
		return nil, err
	}

	offsets := newRuneOffsets(input)
	var out []Result
	for rm != nil && (n < 0 || len(out) < n) {
		out = append(out, matchFromRegexp2(offsets, rm))
		rm, err = m.re.FindNextMatch(rm)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func matchFromRegexp2(offsets runeOffsets, rm *regexp2.Match) Result {
	start, end := offsets.span(rm.Index, rm.Length)
	groups := rm.Groups()
	res := Result{
		Text:   rm.String(),
		Index:  [2]int{start, end},
		Groups: make([]string, 0, len(groups)),
	}
	for _, g := range groups[1:] {
		if len(g.Captures) == 0 {
			res.Groups = append(res.Groups, "")
			continue
		}
		res.Groups = append(res.Groups, g.String())
	}
	return res
}

// runeOffsets maps rune indexes to byte offsets within a string.
type runeOffsets []int

func newRuneOffsets(s string) runeOffsets {
	offs := make(runeOffsets, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offs = append(offs, i)
	}
	return append(offs, len(s))
}

func (o runeOffsets) span(index, length int) (int, int) {
	return o[index], o[index+length]
}

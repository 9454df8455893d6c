package uargs

import (
	"strings"

	"github.com/agext/levenshtein"
)

const suggestionThreshold = 0.7

// ResolveLong resolves a possibly abbreviated long-option name against the
// declared set. An exact match always wins, so declaring a new, longer name
// can never change how an existing exact name resolves. Otherwise a strict
// prefix of exactly one declared name resolves to that name; a prefix of
// several fails with every candidate in declaration order; and no match at
// all fails with close declared names as suggestions.
func ResolveLong(input string, declared []string) (string, error) {
	var candidates []string
	for _, name := range declared {
		if name == input {
			return name, nil
		}
		if strings.HasPrefix(name, input) {
			candidates = append(candidates, name)
		}
	}
	switch len(candidates) {
	case 0:
		return "", &UnexpectedOptionError{
			Option:      "--" + input,
			Suggestions: Suggestions(input, declared, "--"),
		}
	case 1:
		return candidates[0], nil
	default:
		return "", &AmbiguousOptionError{Option: input, Candidates: candidates}
	}
}

// Suggestions filters declared down to the names similar to input, each
// prefixed for display ("--" for long options, "" for prefix-style keys).
func Suggestions(input string, declared []string, prefix string) []string {
	var out []string
	for _, name := range declared {
		if levenshtein.Similarity(input, name, nil) > suggestionThreshold {
			out = append(out, prefix+name)
		}
	}
	return out
}

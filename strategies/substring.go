package strategies

import (
	"strings"

	"github.com/poiesic/arraycompare/core"
)

var (
	// ContainsAllWithSubstringSearch succeeds when every keyword occurs inside
	// some data item not excluded by an exception.
	ContainsAllWithSubstringSearch core.Strategy = checkStrategy{check: containsAllSubstring}

	// ContainsAnyWithSubstringSearch succeeds when at least one keyword occurs
	// inside a data item not excluded by an exception.
	ContainsAnyWithSubstringSearch core.Strategy = checkStrategy{check: containsAnySubstring}

	// ContainsNotWithSubstringSearch succeeds when no keyword occurs inside a
	// data item not excluded by an exception.
	ContainsNotWithSubstringSearch core.Strategy = checkStrategy{check: containsNotSubstring}
)

func containsAllSubstring(s core.Sample) bool {
	candidates := withoutExceptions(s.Data, s.Exceptions)
	for _, keyword := range s.Keywords {
		if !anyContains(candidates, keyword) {
			return false
		}
	}
	return true
}

func containsAnySubstring(s core.Sample) bool {
	candidates := withoutExceptions(s.Data, s.Exceptions)
	for _, keyword := range s.Keywords {
		if anyContains(candidates, keyword) {
			return true
		}
	}
	return false
}

func containsNotSubstring(s core.Sample) bool {
	return !containsAnySubstring(s)
}

// withoutExceptions drops every data item that contains an exception.
func withoutExceptions(data, exceptions []string) []string {
	if len(exceptions) == 0 {
		return data
	}
	kept := make([]string, 0, len(data))
	for _, item := range data {
		if !anyExceptionIn(item, exceptions) {
			kept = append(kept, item)
		}
	}
	return kept
}

func anyExceptionIn(item string, exceptions []string) bool {
	for _, exception := range exceptions {
		if exception != "" && strings.Contains(item, exception) {
			return true
		}
	}
	return false
}

func anyContains(items []string, keyword string) bool {
	for _, item := range items {
		if strings.Contains(item, keyword) {
			return true
		}
	}
	return false
}

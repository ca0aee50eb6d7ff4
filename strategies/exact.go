package strategies

import (
	"slices"

	"github.com/poiesic/arraycompare/core"
)

var (
	// IsEqual succeeds when data and keywords hold the same items in the same order.
	IsEqual core.Strategy = checkStrategy{check: isEqual}

	// IsNotEqual succeeds when data and keywords have no item in common.
	//
	// An empty data or keyword list on its own succeeds, but a sample where
	// both are empty fails.
	IsNotEqual core.Strategy = checkStrategy{check: isNotEqual}

	// ContainsAll succeeds when every keyword is an item of data.
	ContainsAll core.Strategy = checkStrategy{check: containsAll}

	// ContainsAny succeeds when at least one keyword is an item of data.
	ContainsAny core.Strategy = checkStrategy{check: containsAny}

	// ContainsNot succeeds when no keyword is an item of data.
	ContainsNot core.Strategy = checkStrategy{check: containsNot}
)

func isEqual(s core.Sample) bool {
	return slices.Equal(s.Data, s.Keywords)
}

func isNotEqual(s core.Sample) bool {
	// Empty against empty is a failure, not a vacuous success.
	if len(s.Data) == 0 && len(s.Keywords) == 0 {
		return false
	}
	if len(s.Data) == 0 || len(s.Keywords) == 0 {
		return true
	}
	return !intersects(s.Data, s.Keywords)
}

func containsAll(s core.Sample) bool {
	items := toSet(s.Data)
	for _, keyword := range s.Keywords {
		if _, ok := items[keyword]; !ok {
			return false
		}
	}
	return true
}

func containsAny(s core.Sample) bool {
	return intersects(s.Data, s.Keywords)
}

func containsNot(s core.Sample) bool {
	return !intersects(s.Data, s.Keywords)
}

func intersects(data, keywords []string) bool {
	items := toSet(data)
	for _, keyword := range keywords {
		if _, ok := items[keyword]; ok {
			return true
		}
	}
	return false
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

package strategies

import "github.com/poiesic/arraycompare/core"

// Names of the reference strategies.
const (
	NameIsEqual                        = "is_equal"
	NameIsNotEqual                     = "is_not_equal"
	NameContainsAll                    = "contains_all"
	NameContainsAny                    = "contains_any"
	NameContainsNot                    = "contains_not"
	NameContainsAllWithSubstringSearch = "contains_all_with_substring_search"
	NameContainsAnyWithSubstringSearch = "contains_any_with_substring_search"
	NameContainsNotWithSubstringSearch = "contains_not_with_substring_search"
)

// Builtins returns the reference strategies keyed by name. The map is new on
// every call.
func Builtins() map[string]core.Strategy {
	return map[string]core.Strategy{
		NameIsEqual:                        IsEqual,
		NameIsNotEqual:                     IsNotEqual,
		NameContainsAll:                    ContainsAll,
		NameContainsAny:                    ContainsAny,
		NameContainsNot:                    ContainsNot,
		NameContainsAllWithSubstringSearch: ContainsAllWithSubstringSearch,
		NameContainsAnyWithSubstringSearch: ContainsAnyWithSubstringSearch,
		NameContainsNotWithSubstringSearch: ContainsNotWithSubstringSearch,
	}
}

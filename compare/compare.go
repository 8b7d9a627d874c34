// Package compare contains comparison functions used to order the values
// linked in lists.
package compare

import "golang.org/x/exp/constraints"

// Function is a comparison function for ordered types.
func Function[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// By returns a comparison function ordering values of type T by the key that
// key extracts from them.
//
// The returned function is suitable to sort lists of values with list.Sort:
//
//	head.Sort(compare.By(func(p *Person) string { return p.LastName }))
func By[T any, K constraints.Ordered](key func(*T) K) func(a, b *T) int {
	return func(a, b *T) int { return Function(key(a), key(b)) }
}

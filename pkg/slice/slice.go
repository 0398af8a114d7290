// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with small generic
helpers that the standard library does not provide.
*/
package slice

// Count returns how many elements satisfy predicate.
func Count[T any](input []T, predicate func(T) bool) int {
	total := 0
	for _, v := range input {
		if predicate(v) {
			total++
		}
	}
	return total
}

// IndexBy builds a lookup map keyed by key(element). Later elements win on
// duplicate keys.
func IndexBy[T any, K comparable](input []T, key func(T) K) map[K]T {
	index := make(map[K]T, len(input))
	for _, v := range input {
		index[key(v)] = v
	}
	return index
}

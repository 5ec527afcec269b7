// Package internal holds helpers shared by the simulator packages.
package internal

import (
	"iter"
	"maps"
	"slices"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return
				}
			}
		}
	}
}

// SortedDefines collects name, value pairs into a map, later pairs
// overriding earlier ones, and returns the names in sorted order.
func SortedDefines(seq iter.Seq2[string, string]) (names []string, values map[string]string) {
	values = maps.Collect(seq)
	names = slices.Sorted(maps.Keys(values))
	return
}

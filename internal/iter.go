package internal

import (
	"iter"
)

// Tagged is one element of a labelled sequence.
type Tagged[T any] struct {
	Tag   string
	Value T
}

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterSeq2Tag wraps the values of a dual-return iterator with a fixed tag,
// so concatenated sequences remain distinguishable.
func IterSeq2Tag[T any](tag string, seq iter.Seq2[string, T]) iter.Seq2[string, Tagged[T]] {
	return func(yield func(string, Tagged[T]) bool) {
		for key, val := range seq {
			if !yield(key, Tagged[T]{Tag: tag, Value: val}) {
				return
			}
		}
	}
}

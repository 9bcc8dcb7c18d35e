package internal

import (
	"iter"
)

// IterSeqGroup groups a byte sequence into consecutive width-sized chunks.
// An incomplete trailing chunk is zero padded on the right.
// The yielded slice is reused between iterations.
func IterSeqGroup(seq iter.Seq[byte], width int) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		group := make([]byte, 0, width)
		for b := range seq {
			group = append(group, b)
			if len(group) < width {
				continue
			}
			if !yield(group) {
				return
			}
			group = group[:0]
		}

		if len(group) == 0 {
			return
		}

		for len(group) < width {
			group = append(group, 0)
		}

		yield(group)
	}
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

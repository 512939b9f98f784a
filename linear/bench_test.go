package linear_test

import (
	"testing"

	"github.com/me21jarus/dsa/linear"
)

// benchmarkAppend fills a fresh list with n tail inserts per iteration.
func benchmarkAppend(b *testing.B, n int, push func(int)) {
	b.Helper()
	for i := 0; i < n; i++ {
		push(i)
	}
}

// BenchmarkSingly_InsertAtTail measures O(1) appends through the tail handle.
func BenchmarkSingly_InsertAtTail(b *testing.B) {
	for i := 0; i < b.N; i++ {
		l := linear.NewSingly[int]()
		benchmarkAppend(b, 1000, l.InsertAtTail)
	}
}

// BenchmarkDoubly_InsertAtTail measures appends with prev maintenance.
func BenchmarkDoubly_InsertAtTail(b *testing.B) {
	for i := 0; i < b.N; i++ {
		l := linear.NewDoubly[int]()
		benchmarkAppend(b, 1000, l.InsertAtTail)
	}
}

// BenchmarkSingly_InsertAtMiddle measures O(pos) positional splices.
func BenchmarkSingly_InsertAtMiddle(b *testing.B) {
	l := linear.NewSingly[int]()
	benchmarkAppend(b, 1000, l.InsertAtTail)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := l.InsertAt(500, i); err != nil {
			b.Fatalf("InsertAt failed: %v", err)
		}
		if _, err := l.DeleteAt(500); err != nil {
			b.Fatalf("DeleteAt failed: %v", err)
		}
	}
}

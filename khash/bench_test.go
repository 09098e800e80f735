package khash_test

import (
	"testing"

	"github.com/katalvlaran/streamsketch/khash"
	"github.com/katalvlaran/streamsketch/krng"
)

func BenchmarkPick(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		stream := krng.NewStream(int64(i))
		_, _ = khash.Pick(100_000, 256, 4, stream)
	}
}

func BenchmarkEval(b *testing.B) {
	h, _ := khash.Pick(100_000, 256, 4, krng.NewStream(1))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = h.Eval(int64(i))
	}
}

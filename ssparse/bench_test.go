package ssparse_test

import (
	"testing"

	"github.com/katalvlaran/streamsketch/krng"
	"github.com/katalvlaran/streamsketch/ssparse"
)

func BenchmarkUpdate(b *testing.B) {
	sk, _ := ssparse.New(100_000, 16, 0.01, krng.NewStream(1))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = sk.Update(int64(i%100_000), int64(i))
	}
}

func BenchmarkRecover(b *testing.B) {
	sk, _ := ssparse.New(100_000, 16, 0.01, krng.NewStream(1))
	for i := int64(0); i < 10; i++ {
		_ = sk.Update(i*1000, i+1)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = sk.Recover()
	}
}

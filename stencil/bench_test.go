// Package stencil_test provides benchmarks for factorization and evaluation
// over deep layered tables.
package stencil_test

import (
	"fmt"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/endcap/stencil"
)

var benchDepths = []int{64, 512, 4096}

// sinks to defeat dead-code elimination
var (
	sinkT *stencil.Table
	sinkV []r3.Vec
)

// layeredTable appends n entries, each mixing a control vertex with the two
// previous entries, so every entry depends on the whole chain before it.
func layeredTable(b *testing.B, nc, n int) *stencil.Table {
	b.Helper()
	rng := rand.New(rand.NewSource(1337))
	tbl, err := stencil.NewTable(nc)
	if err != nil {
		b.Fatal(err)
	}
	for k := 0; k < n; k++ {
		idx := []int{rng.Intn(nc)}
		w := []float64{0.5}
		if k >= 2 {
			idx = append(idx, nc+k-1, nc+k-2)
			w = append(w, 0.25, 0.25)
		} else {
			w[0] = 1
		}
		s, err := stencil.New(idx, w)
		if err != nil {
			b.Fatal(err)
		}
		if err = tbl.Append(s); err != nil {
			b.Fatal(err)
		}
	}
	return tbl
}

func BenchmarkFactorize(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchDepths {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			tbl := layeredTable(b, 32, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := tbl.Factorize()
				if err != nil {
					b.Fatal(err)
				}
				sinkT = out
			}
		})
	}
}

func BenchmarkUpdateValues(b *testing.B) {
	b.ReportAllocs()
	src := make([]r3.Vec, 32)
	for i := range src {
		src[i] = r3.Vec{X: float64(i), Y: float64(i * i), Z: 1}
	}
	for _, n := range benchDepths {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			tbl := layeredTable(b, len(src), n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				vals, err := tbl.UpdateValues(src)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = vals
			}
		})
	}
}

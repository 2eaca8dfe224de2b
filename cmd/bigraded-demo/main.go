// Command bigraded-demo exercises the engine end to end: it builds a
// handful of random bigraded matrices through package ingest, reduces them
// concurrently through package parallel, and runs an RU-decomposition on a
// freshly generated matrix through package reduce. It is test tooling in
// the spirit of the teacher's examples/*.go mains, not a front-end.
package main

import (
	"context"
	"log"
	"math/rand"

	"github.com/spf13/pflag"

	"github.com/twoparam-tda/bigraded/ingest"
	"github.com/twoparam-tda/bigraded/matrix"
	"github.com/twoparam-tda/bigraded/parallel"
	"github.com/twoparam-tda/bigraded/reduce"
)

func main() {
	rows := pflag.IntP("rows", "r", 8, "rows in each generated matrix")
	cols := pflag.IntP("cols", "c", 8, "columns in each generated matrix")
	bigrades := pflag.IntP("bigrades", "b", 2, "number of x-axis bigrades (single y-grade row)")
	seed := pflag.Int64P("seed", "s", 1, "random seed for the generated matrices")
	count := pflag.IntP("count", "n", 3, "number of independent matrices to reduce")
	fanOut := pflag.IntP("parallel", "p", 2, "maximum concurrent Kernel reductions")
	pflag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	matrices := make([]*matrix.Bigraded, *count)
	for i := range matrices {
		m, err := randomBigraded(rng, *rows, *cols, *bigrades)
		if err != nil {
			log.Fatalf("bigraded-demo: generating matrix %d: %v", i, err)
		}
		matrices[i] = m
	}

	results, err := parallel.Run(context.Background(), matrices, parallel.WithMaxConcurrency(*fanOut))
	if err != nil {
		log.Fatalf("bigraded-demo: kernel: %v", err)
	}

	for i, k := range results {
		log.Printf("matrix %d: kernel has %d generators", i, k.Sparse().NumCols())
	}

	ruSubject, err := randomBigraded(rng, *rows, *cols, *bigrades)
	if err != nil {
		log.Fatalf("bigraded-demo: generating RU-decomposition subject: %v", err)
	}
	p := matrix.NewPermuted(ruSubject.Sparse())
	u, err := reduce.DecomposeRU(p)
	if err != nil {
		log.Fatalf("bigraded-demo: RU-decomposition: %v", err)
	}
	log.Printf("RU-decomposition: U is %d x %d", u.Size(), u.Size())
}

// randomBigraded builds a matrix with xBigrades x-axis bigrades (a single
// y-grade row), distributing cols columns evenly across them and
// populating each column with a small random number of entries.
func randomBigraded(rng *rand.Rand, rows, cols, xBigrades int) (*matrix.Bigraded, error) {
	if xBigrades < 1 {
		xBigrades = 1
	}
	b := ingest.NewBuilder(rows, cols, 1, xBigrades, ingest.WithValidation(false))

	colsPerGrade := cols / xBigrades
	if colsPerGrade == 0 {
		colsPerGrade = 1
	}

	col := 0
	for x := 0; x < xBigrades; x++ {
		last := col + colsPerGrade - 1
		if x == xBigrades-1 || last >= cols {
			last = cols - 1
		}
		for ; col <= last && col < cols; col++ {
			density := rng.Intn(3) + 1
			for k := 0; k < density; k++ {
				row := rng.Intn(rows)
				if err := b.AddEntry(row, col); err != nil {
					return nil, err
				}
			}
		}
		if err := b.MarkBigrade(0, x, last); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

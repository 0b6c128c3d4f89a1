package dec

import "github.com/notargets/godec/utils"

// parallelRows calls fn for every row in [0, nRows), splitting the rows into at most
// degree contiguous chunks that run concurrently. Every fn call must only write row i.
func parallelRows(degree, nRows int, fn func(i int)) {
	if degree < 2 || nRows < 2 {
		for i := 0; i < nRows; i++ {
			fn(i)
		}
		return
	}
	if degree > nRows {
		degree = nRows
	}
	utils.NewPartitionMap(degree, nRows).Run(func(_, kMin, kMax int) {
		for i := kMin; i < kMax; i++ {
			fn(i)
		}
	})
}

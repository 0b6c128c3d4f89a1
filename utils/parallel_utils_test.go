package utils

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPartitionMap(t *testing.T) {
	{ // Bucket sizes
		getHisto := func(K, Np int) (histo map[int]int) {
			pm := NewPartitionMap(Np, K)
			histo = make(map[int]int)
			for np := 0; np < pm.ParallelDegree; np++ {
				maxK := pm.GetBucketDimension(np)
				histo[maxK]++
			}
			return
		}
		getTotal := func(histo map[int]int) (total int) {
			for key, count := range histo {
				total += key * count
			}
			return
		}
		assert.Equal(t, map[int]int{0: 30, 1: 2}, getHisto(2, 32))
		assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
		assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
		assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
		assert.Equal(t, 287, getTotal(getHisto(287, 32)))
		for n := 64; n < 2000; n++ {
			var (
				keys   [2]float64
				keyNum int
			)
			histo := getHisto(n, 32)
			for key := range histo {
				keys[keyNum] = float64(key)
				keyNum++
			}
			if keyNum == 2 {
				assert.Equal(t, 1., math.Abs(keys[0]-keys[1])) // Maximum imbalance of 1
			}
			assert.Equal(t, n, getTotal(histo))
		}
	}
	{ // Buckets tile the index range in order
		for maxIndex := 0; maxIndex < 200; maxIndex++ {
			for _, degree := range []int{1, 3, 5, 32} {
				var (
					pm   = NewPartitionMap(degree, maxIndex)
					next int
				)
				for bn := 0; bn < degree; bn++ {
					kMin, kMax := pm.GetBucketRange(bn)
					assert.Equal(t, next, kMin, "degree %d, max %d, bucket %d", degree, maxIndex, bn)
					assert.Equal(t, kMax-kMin, pm.GetBucketDimension(bn))
					next = kMax
				}
				assert.Equal(t, maxIndex, next)
			}
		}
	}
	{ // Invalid construction
		assert.Panics(t, func() { NewPartitionMap(0, 10) })
		assert.Panics(t, func() { NewPartitionMap(2, -1) })
	}
}

func TestPartitionMapRun(t *testing.T) {
	for _, degree := range []int{1, 2, 3, 7, 16} {
		for _, maxIndex := range []int{0, 1, 5, 33} {
			var (
				pm      = NewPartitionMap(degree, maxIndex)
				visited = make([]int, maxIndex)
				mu      sync.Mutex
				calls   int
			)
			pm.Run(func(bn, kMin, kMax int) {
				assert.Less(t, kMin, kMax)
				for k := kMin; k < kMax; k++ {
					visited[k]++ // buckets are disjoint
				}
				mu.Lock()
				calls++
				mu.Unlock()
			})
			for k := range visited {
				assert.Equal(t, 1, visited[k], "degree %d, index %d", degree, k)
			}
			assert.LessOrEqual(t, calls, degree)
		}
	}
}

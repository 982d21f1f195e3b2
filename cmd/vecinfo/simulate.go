package main

import (
	"math"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-vector/vector"
)

type growthReport struct {
	name      string
	appends   int
	capacity  int
	reallocs  int
	bound     int
	relocated int
}

// slackPercent is the share of allocated slots holding no element.
func (r growthReport) slackPercent() float64 {
	if r.capacity == 0 {
		return 0
	}
	return 100 * float64(r.capacity-r.appends) / float64(r.capacity)
}

// simulate appends n elements under the policy and records every
// reallocation the vector reports.
func simulate(e policyEntry, n, reserve int, logger *zap.Logger) growthReport {
	r := growthReport{name: e.name, appends: max(n, 0)}

	size := 0
	v := vector.New[int](
		vector.WithGrowthFactor(e.factor),
		vector.WithMinCapacity(e.minCapacity),
		vector.WithCapacity(reserve),
		vector.WithGrowthHook(func(from, to int) {
			r.reallocs++
			r.relocated += size
			logger.Debug("vector grew",
				zap.Int("from", from),
				zap.Int("to", to),
				zap.Int("size", size),
			)
		}),
	)

	for i := 0; i < n; i++ {
		v.PushBack(i)
		size = v.Size()
	}

	r.capacity = v.Capacity()
	if n > 0 {
		r.bound = int(math.Ceil(math.Log2(float64(n)))) + 1
	}
	return r
}

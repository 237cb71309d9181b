// Package reporting reduces a gomea.Result into plottable summaries.
// Rendering itself is out of scope here; this package only produces the
// bucketed demand and active-shift counts a caller can feed into whatever
// charting library it prefers.
package reporting

import (
	"math"

	"github.com/vrp-gomea/gomea/gomea"
)

// Summary is a time-bucketed view of a solved schedule: how many client
// visits arrive in each bucket and how many shifts are active at each
// bucket start.
type Summary struct {
	BucketStarts []float64
	Demand       []int // number of client visits whose arrival falls in the bucket
	ActiveShifts []int // number of shifts active (started, not yet ended) at the bucket start
}

// ActiveShiftsAt returns how many shifts have started but not yet ended at
// time t.
func ActiveShiftsAt(ins *gomea.Instance, t float64) int {
	count := 0
	for k := 0; k < ins.V; k++ {
		if ins.SS[k] <= t && t < ins.SS[k]+ins.U[k] {
			count++
		}
	}
	return count
}

// Utilization buckets client arrival times and active-shift counts over
// [min(ss), latest planned time, including returns to base] into buckets of
// width bucketSize minutes (<=0 uses
// a 60-minute default).
func Utilization(ins *gomea.Instance, result *gomea.Result, bucketSize float64) Summary {
	if bucketSize <= 0 {
		bucketSize = 60
	}

	minStart := ins.SS[0]
	for _, s := range ins.SS[1:] {
		if s < minStart {
			minStart = s
		}
	}

	maxTime := minStart
	var arrivals []float64
	for _, shiftArrival := range result.Arrival {
		if len(shiftArrival) == 0 {
			continue
		}
		for _, t := range shiftArrival {
			if t > maxTime {
				maxTime = t
			}
		}
		for _, t := range shiftArrival[1 : len(shiftArrival)-1] {
			arrivals = append(arrivals, t)
		}
	}

	numBuckets := int(math.Ceil((maxTime-minStart)/bucketSize)) + 1
	if numBuckets < 1 {
		numBuckets = 1
	}
	summary := Summary{
		BucketStarts: make([]float64, numBuckets),
		Demand:       make([]int, numBuckets),
		ActiveShifts: make([]int, numBuckets),
	}
	for b := 0; b < numBuckets; b++ {
		start := minStart + float64(b)*bucketSize
		summary.BucketStarts[b] = start
		summary.ActiveShifts[b] = ActiveShiftsAt(ins, start)
	}
	for _, t := range arrivals {
		b := int((t - minStart) / bucketSize)
		if b < 0 {
			b = 0
		}
		if b >= numBuckets {
			b = numBuckets - 1
		}
		summary.Demand[b]++
	}
	return summary
}

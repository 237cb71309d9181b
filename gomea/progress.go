package gomea

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// progressMonitor tracks best-so-far and mean scores per generation, and the
// flat-generation counter used for early termination.
type progressMonitor struct {
	threshold float64
	stopAfter int

	best    []float64
	mean    []float64
	flatRun int
}

func newProgressMonitor(threshold float64, stopAfter int) *progressMonitor {
	return &progressMonitor{threshold: threshold, stopAfter: stopAfter}
}

// record appends this generation's best and mean score, updates the flat
// counter, and reports whether the run should stop now.
func (pm *progressMonitor) record(bestScore, meanScore float64) (done bool) {
	pm.best = append(pm.best, bestScore)
	pm.mean = append(pm.mean, meanScore)

	if len(pm.best) >= 3 {
		prev, cur := pm.best[len(pm.best)-2], pm.best[len(pm.best)-1]
		denom := math.Max(prev, cur)
		var ratio float64
		if denom != 0 {
			ratio = math.Abs(prev-cur) / denom
		}
		if ratio <= pm.threshold {
			pm.flatRun++
		} else {
			pm.flatRun = 0
		}
	}
	return pm.flatRun >= pm.stopAfter
}

func meanOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return floats.Sum(xs) / float64(len(xs))
}

package sales

import (
	"math"
	"slices"

	"github.com/vfg2006/dashboard-entregas-vendas/internal/domain"
)

const whiskerFactor = 1.5

// Summarize calcula o boxplot de um grupo de valores, ignorando valores ausentes
func Summarize(segment string, values []float64) domain.ValueDistribution {
	sorted := slices.DeleteFunc(slices.Clone(values), domain.IsMissing)
	slices.Sort(sorted)

	distribution := domain.ValueDistribution{
		Segment:  segment,
		Count:    len(sorted),
		Outliers: make([]float64, 0),
	}
	if len(sorted) == 0 {
		return distribution
	}

	distribution.Min = sorted[0]
	distribution.Max = sorted[len(sorted)-1]
	distribution.Q1 = quantile(sorted, 0.25)
	distribution.Median = quantile(sorted, 0.5)
	distribution.Q3 = quantile(sorted, 0.75)

	iqr := distribution.IQR()
	distribution.LowerFence = distribution.Q1 - whiskerFactor*iqr
	distribution.UpperFence = distribution.Q3 + whiskerFactor*iqr

	distribution.LowerWhisker = math.Inf(1)
	distribution.UpperWhisker = math.Inf(-1)
	for _, value := range sorted {
		if value < distribution.LowerFence || value > distribution.UpperFence {
			distribution.Outliers = append(distribution.Outliers, value)
			continue
		}
		distribution.LowerWhisker = min(distribution.LowerWhisker, value)
		distribution.UpperWhisker = max(distribution.UpperWhisker, value)
	}

	return distribution
}

// quantile interpola linearamente entre as posições vizinhas (h = (n-1)p), como o pandas
func quantile(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := int(math.Floor(h))
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

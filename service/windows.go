package service

import (
	"math"
	"sort"
	"time"

	"wellness-engine/domain"
)

// roundTo2Decimals rounds a float64 to 2 decimals.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// roundTo4Decimals rounds a float64 to 4 decimals, used for rates and
// shares where 2 decimals would swallow the thresholds.
func roundTo4Decimals(value float64) float64 {
	return math.Round(value*10000) / 10000
}

// transactionsInWindow returns the settled transactions dated within the
// trailing window (asOf-days, asOf]. Pending transactions are ignored
// everywhere; their amounts can still change.
func transactionsInWindow(txns []domain.Transaction, asOf time.Time, days int) []domain.Transaction {
	start := asOf.AddDate(0, 0, -days)
	var result []domain.Transaction
	for _, t := range txns {
		if t.Pending {
			continue
		}
		if t.Date.After(start) && !t.Date.After(asOf) {
			result = append(result, t)
		}
	}
	return result
}

// monthsIn converts a window length to months for per-month normalization.
func monthsIn(days int) float64 {
	return float64(days) / 30.0
}

// averageMonthlyExpenses sums spend (positive amounts) across the window and
// normalizes to a 30-day month.
func averageMonthlyExpenses(txns []domain.Transaction, days int) float64 {
	total := 0.0
	for _, t := range txns {
		if t.Amount > 0 {
			total += t.Amount
		}
	}
	return total / monthsIn(days)
}

// medianFloat returns the median of values; zero for an empty slice.
func medianFloat(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64{}, values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// gapsInDays returns the day gaps between consecutive dates, oldest first.
func gapsInDays(dates []time.Time) []float64 {
	if len(dates) < 2 {
		return nil
	}
	sorted := append([]time.Time{}, dates...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	gaps := make([]float64, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		gaps = append(gaps, sorted[i].Sub(sorted[i-1]).Hours()/24)
	}
	return gaps
}

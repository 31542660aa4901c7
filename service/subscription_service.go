package service

import (
	"math"
	"sort"
	"time"

	"wellness-engine/domain"
	"wellness-engine/repository"
)

// Categories that describe account mechanics rather than merchant spending.
// They never count toward subscription detection.
var nonMerchantCategories = map[string]bool{
	"payment":          true,
	"transfer":         true,
	"deposit":          true,
	"payroll":          true,
	"interest charged": true,
	"rent":             true,
}

// SubscriptionService detects recurring merchant spending per window.
type SubscriptionService struct {
	repo repository.UserRepository
	now  func() time.Time
}

func NewSubscriptionService(repo repository.UserRepository) *SubscriptionService {
	return &SubscriptionService{repo: repo, now: time.Now}
}

// AnalyzeSubscriptionsForUser computes recurring-spend metrics for the
// 30-day and 180-day windows. A window with no spending yields nil.
func (s *SubscriptionService) AnalyzeSubscriptionsForUser(userID string) (domain.SubscriptionSignals, error) {
	txns, err := s.repo.GetTransactions(userID)
	if err != nil {
		return domain.SubscriptionSignals{}, err
	}

	asOf := s.now()
	return domain.SubscriptionSignals{
		ShortTerm: computeSubscriptionMetrics(domain.WindowShortTerm, transactionsInWindow(txns, asOf, domain.WindowShortTermDays), domain.WindowShortTermDays),
		LongTerm:  computeSubscriptionMetrics(domain.WindowLongTerm, transactionsInWindow(txns, asOf, domain.WindowLongTermDays), domain.WindowLongTermDays),
	}, nil
}

func computeSubscriptionMetrics(window domain.Window, txns []domain.Transaction, days int) *domain.SubscriptionMetrics {
	spend := merchantSpend(txns)
	if len(spend.byMerchant) == 0 {
		return nil
	}

	recurring := []string{}
	recurringSpend := 0.0
	merchantMonthly := map[string]float64{}
	for merchant, entries := range spend.byMerchant {
		if !isRecurring(entries.dates) {
			continue
		}
		recurring = append(recurring, merchant)
		recurringSpend += entries.total
		merchantMonthly[merchant] = roundTo2Decimals(entries.total / monthsIn(days))
	}
	sort.Strings(recurring)

	share := 0.0
	if spend.total > 0 {
		share = recurringSpend / spend.total
	}

	return &domain.SubscriptionMetrics{
		Window:                     window,
		RecurringMerchantCount:     len(recurring),
		RecurringMerchants:         recurring,
		TotalMonthlyRecurringSpend: roundTo2Decimals(recurringSpend / monthsIn(days)),
		SubscriptionShare:          roundTo4Decimals(share),
		MerchantMonthlySpend:       merchantMonthly,
	}
}

type merchantEntries struct {
	dates []time.Time
	total float64
}

type spendSummary struct {
	byMerchant map[string]*merchantEntries
	total      float64
}

// merchantSpend groups outflow transactions by merchant, skipping account
// mechanics and unnamed merchants.
func merchantSpend(txns []domain.Transaction) spendSummary {
	summary := spendSummary{byMerchant: map[string]*merchantEntries{}}
	for _, t := range txns {
		if t.Amount <= 0 {
			continue
		}
		summary.total += t.Amount
		if t.MerchantName == "" || nonMerchantCategories[t.Category] {
			continue
		}
		entry, ok := summary.byMerchant[t.MerchantName]
		if !ok {
			entry = &merchantEntries{}
			summary.byMerchant[t.MerchantName] = entry
		}
		entry.dates = append(entry.dates, t.Date)
		entry.total += t.Amount
	}
	return summary
}

// isRecurring reports whether the charge dates look like a subscription:
// at least three charges with some consecutive run fitting a 90-day span,
// spaced at roughly periodic intervals.
func isRecurring(dates []time.Time) bool {
	if len(dates) < MinRecurringOccurrences {
		return false
	}
	gaps := gapsInDays(dates)
	median := medianFloat(gaps)
	if median < MinRecurringGapDays {
		return false
	}
	for _, gap := range gaps {
		if math.Abs(gap-median) > RecurringGapTolerance {
			return false
		}
	}
	return hasRunWithinPeriod(dates, MinRecurringOccurrences, RecurringPeriodDays)
}

// hasRunWithinPeriod reports whether some n consecutive dates fit inside
// periodDays.
func hasRunWithinPeriod(dates []time.Time, n int, periodDays float64) bool {
	sorted := append([]time.Time{}, dates...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })
	for i := 0; i+n-1 < len(sorted); i++ {
		span := sorted[i+n-1].Sub(sorted[i]).Hours() / 24
		if span <= periodDays {
			return true
		}
	}
	return false
}

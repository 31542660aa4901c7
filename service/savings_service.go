package service

import (
	"time"

	"wellness-engine/domain"
	"wellness-engine/repository"
)

// SavingsService measures savings growth and emergency-fund coverage.
type SavingsService struct {
	repo repository.UserRepository
	now  func() time.Time
}

func NewSavingsService(repo repository.UserRepository) *SavingsService {
	return &SavingsService{repo: repo, now: time.Now}
}

// AnalyzeSavingsForUser computes savings metrics per window. A window with
// no savings-account activity yields nil: no evidence, not zero growth.
func (s *SavingsService) AnalyzeSavingsForUser(userID string) (domain.SavingsSignals, error) {
	accounts, err := s.repo.GetAccounts(userID)
	if err != nil {
		return domain.SavingsSignals{}, err
	}
	txns, err := s.repo.GetTransactions(userID)
	if err != nil {
		return domain.SavingsSignals{}, err
	}

	savingsIDs := map[string]bool{}
	savingsBalance := 0.0
	for _, a := range accounts {
		if a.IsSavings() {
			savingsIDs[a.AccountID] = true
			savingsBalance += a.CurrentBalance
		}
	}

	asOf := s.now()
	return domain.SavingsSignals{
		ShortTerm: computeSavingsMetrics(domain.WindowShortTerm, transactionsInWindow(txns, asOf, domain.WindowShortTermDays), domain.WindowShortTermDays, savingsIDs, savingsBalance),
		LongTerm:  computeSavingsMetrics(domain.WindowLongTerm, transactionsInWindow(txns, asOf, domain.WindowLongTermDays), domain.WindowLongTermDays, savingsIDs, savingsBalance),
	}, nil
}

func computeSavingsMetrics(window domain.Window, txns []domain.Transaction, days int, savingsIDs map[string]bool, savingsBalance float64) *domain.SavingsMetrics {
	netInflow := 0.0
	sawActivity := false
	for _, t := range txns {
		if !savingsIDs[t.AccountID] {
			continue
		}
		sawActivity = true
		// Negative amounts are deposits under the aggregator convention.
		netInflow -= t.Amount
	}
	if !sawActivity {
		return nil
	}

	// The balance at the window start is reconstructed from the current
	// balance and the window's net flow.
	startBalance := savingsBalance - netInflow
	growthRate := 0.0
	if startBalance > 0 {
		growthRate = netInflow / startBalance
	}

	monthlyExpenses := averageMonthlyExpenses(txns, days)
	coverage := 0.0
	if monthlyExpenses > 0 {
		coverage = savingsBalance / monthlyExpenses
	}

	return &domain.SavingsMetrics{
		Window:                      window,
		NetInflow:                   roundTo2Decimals(netInflow),
		MonthlyNetInflow:            roundTo2Decimals(netInflow / monthsIn(days)),
		GrowthRate:                  roundTo4Decimals(growthRate),
		SavingsBalance:              roundTo2Decimals(savingsBalance),
		AverageMonthlyExpenses:      roundTo2Decimals(monthlyExpenses),
		EmergencyFundCoverageMonths: roundTo2Decimals(coverage),
	}
}

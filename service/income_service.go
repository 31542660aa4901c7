package service

import (
	"math"
	"time"

	"wellness-engine/domain"
	"wellness-engine/repository"
)

// IncomeService detects payroll-like deposits and cash-flow buffer.
type IncomeService struct {
	repo repository.UserRepository
	now  func() time.Time
}

func NewIncomeService(repo repository.UserRepository) *IncomeService {
	return &IncomeService{repo: repo, now: time.Now}
}

// AnalyzeIncomeForUser computes income metrics per window. A window with no
// payroll-like deposits yields nil.
func (s *IncomeService) AnalyzeIncomeForUser(userID string) (domain.IncomeSignals, error) {
	accounts, err := s.repo.GetAccounts(userID)
	if err != nil {
		return domain.IncomeSignals{}, err
	}
	txns, err := s.repo.GetTransactions(userID)
	if err != nil {
		return domain.IncomeSignals{}, err
	}

	depositoryIDs := map[string]bool{}
	liquidBalance := 0.0
	for _, a := range accounts {
		if a.IsDepository() {
			depositoryIDs[a.AccountID] = true
			liquidBalance += a.AvailableBalance
		}
	}

	asOf := s.now()
	return domain.IncomeSignals{
		ShortTerm: computeIncomeMetrics(domain.WindowShortTerm, transactionsInWindow(txns, asOf, domain.WindowShortTermDays), domain.WindowShortTermDays, depositoryIDs, liquidBalance),
		LongTerm:  computeIncomeMetrics(domain.WindowLongTerm, transactionsInWindow(txns, asOf, domain.WindowLongTermDays), domain.WindowLongTermDays, depositoryIDs, liquidBalance),
	}, nil
}

func computeIncomeMetrics(window domain.Window, txns []domain.Transaction, days int, depositoryIDs map[string]bool, liquidBalance float64) *domain.IncomeMetrics {
	var depositDates []time.Time
	depositTotal := 0.0
	for _, t := range txns {
		// Deposits are negative amounts under the aggregator convention;
		// only sizable ones look like pay.
		if !depositoryIDs[t.AccountID] || t.Amount > -MinPayrollDepositAmount {
			continue
		}
		depositDates = append(depositDates, t.Date)
		depositTotal += -t.Amount
	}
	if len(depositDates) == 0 {
		return nil
	}

	gaps := gapsInDays(depositDates)
	medianGap := medianFloat(gaps)

	variable := false
	for _, gap := range gaps {
		if math.Abs(gap-medianGap) > PayGapIrregularityDays {
			variable = true
			break
		}
	}

	monthlyExpenses := averageMonthlyExpenses(txns, days)
	buffer := 0.0
	if monthlyExpenses > 0 {
		buffer = liquidBalance / monthlyExpenses
	}

	return &domain.IncomeMetrics{
		Window:               window,
		PayrollDepositCount:  len(depositDates),
		AverageDepositAmount: roundTo2Decimals(depositTotal / float64(len(depositDates))),
		MedianPayGapDays:     roundTo2Decimals(medianGap),
		HasVariableIncome:    variable,
		LiquidBalance:        roundTo2Decimals(liquidBalance),
		CashFlowBufferMonths: roundTo2Decimals(buffer),
	}
}

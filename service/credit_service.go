package service

import (
	"math"
	"strings"
	"time"

	"wellness-engine/domain"
	"wellness-engine/repository"
)

// CreditService computes per-card utilization tiers and distress flags.
type CreditService struct {
	repo repository.UserRepository
	now  func() time.Time
}

func NewCreditService(repo repository.UserRepository) *CreditService {
	return &CreditService{repo: repo, now: time.Now}
}

// AnalyzeCreditForUser computes credit metrics per window. Users without
// credit accounts yield nil for both windows: no cards is no evidence, not
// a clean bill of health.
func (s *CreditService) AnalyzeCreditForUser(userID string) (domain.CreditSignals, error) {
	accounts, err := s.repo.GetAccounts(userID)
	if err != nil {
		return domain.CreditSignals{}, err
	}
	txns, err := s.repo.GetTransactions(userID)
	if err != nil {
		return domain.CreditSignals{}, err
	}
	liabilities, err := s.repo.GetLiabilities(userID)
	if err != nil {
		return domain.CreditSignals{}, err
	}

	var cards []domain.Account
	cardIDs := map[string]bool{}
	for _, a := range accounts {
		if a.IsCreditCard() {
			cards = append(cards, a)
			cardIDs[a.AccountID] = true
		}
	}
	if len(cards) == 0 {
		return domain.CreditSignals{}, nil
	}

	liabilityByAccount := map[string]domain.Liability{}
	for _, l := range liabilities {
		liabilityByAccount[l.AccountID] = l
	}

	asOf := s.now()
	return domain.CreditSignals{
		ShortTerm: computeCreditMetrics(domain.WindowShortTerm, cards, liabilityByAccount, cardIDs, transactionsInWindow(txns, asOf, domain.WindowShortTermDays)),
		LongTerm:  computeCreditMetrics(domain.WindowLongTerm, cards, liabilityByAccount, cardIDs, transactionsInWindow(txns, asOf, domain.WindowLongTermDays)),
	}, nil
}

func computeCreditMetrics(window domain.Window, cards []domain.Account, liabilities map[string]domain.Liability, cardIDs map[string]bool, txns []domain.Transaction) *domain.CreditMetrics {
	metrics := &domain.CreditMetrics{Window: window}

	for _, card := range cards {
		utilization := 0.0
		if card.CreditLimit > 0 {
			utilization = card.CurrentBalance / card.CreditLimit
		}
		metrics.Cards = append(metrics.Cards, domain.CardUtilization{
			AccountID:   card.AccountID,
			Mask:        card.Mask,
			Balance:     roundTo2Decimals(card.CurrentBalance),
			CreditLimit: card.CreditLimit,
			Utilization: roundTo4Decimals(utilization),
			Tier:        utilizationTier(utilization),
		})
		if utilization > metrics.MaxUtilization {
			metrics.MaxUtilization = roundTo4Decimals(utilization)
		}
	}

	for _, l := range liabilities {
		if l.IsOverdue {
			metrics.HasOverdue = true
		}
	}

	metrics.HasInterestCharges = hasInterestCharges(txns, cardIDs)
	metrics.HasMinimumPaymentOnly = hasMinimumPaymentOnly(txns, cardIDs, liabilities)

	for _, c := range metrics.Cards {
		if c.Tier != domain.UtilizationLow {
			metrics.MeetsThreshold = true
		}
	}
	if metrics.HasOverdue {
		metrics.MeetsThreshold = true
	}
	return metrics
}

func utilizationTier(utilization float64) domain.UtilizationTier {
	switch {
	case utilization >= UtilizationVeryHighThreshold:
		return domain.UtilizationVeryHigh
	case utilization >= UtilizationHighThreshold:
		return domain.UtilizationHigh
	case utilization >= UtilizationMediumThreshold:
		return domain.UtilizationMedium
	default:
		return domain.UtilizationLow
	}
}

func hasInterestCharges(txns []domain.Transaction, cardIDs map[string]bool) bool {
	for _, t := range txns {
		if !cardIDs[t.AccountID] || t.Amount <= 0 {
			continue
		}
		if strings.Contains(strings.ToLower(t.Category), "interest") ||
			strings.Contains(strings.ToLower(t.MerchantName), "interest") {
			return true
		}
	}
	return false
}

// hasMinimumPaymentOnly reports whether every card payment in the window
// sits within a few dollars of the card's minimum payment. One larger
// payment clears the flag.
func hasMinimumPaymentOnly(txns []domain.Transaction, cardIDs map[string]bool, liabilities map[string]domain.Liability) bool {
	sawPayment := false
	for _, t := range txns {
		if !cardIDs[t.AccountID] || t.Amount >= 0 {
			continue
		}
		liability, ok := liabilities[t.AccountID]
		if !ok || liability.MinimumPaymentAmount <= 0 {
			continue
		}
		sawPayment = true
		if math.Abs(-t.Amount-liability.MinimumPaymentAmount) > MinimumPaymentMatchDollars {
			return false
		}
	}
	return sawPayment
}

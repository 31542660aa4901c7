package service

import (
	"fmt"

	"wellness-engine/domain"
)

// RationaleService produces the plain-language, numerically grounded
// explanation attached to every recommendation. This is the explainability
// contract: when signal data exists, the text cites it; the generic closing
// only appears when no type-specific branch applies.
type RationaleService struct{}

func NewRationaleService() *RationaleService {
	return &RationaleService{}
}

func freshest[T any](short, long *T) *T {
	if short != nil {
		return short
	}
	return long
}

// GenerateRationale dispatches on the item's recommendation types and offer
// category and interpolates concrete figures from the matching signals.
func (s *RationaleService) GenerateRationale(
	item domain.CatalogItem,
	persona domain.Persona,
	signals domain.BehavioralSignals,
) string {
	opening := fmt.Sprintf("Based on your %s profile, ", persona.Name)

	if body := s.typeSpecificBody(item, signals); body != "" {
		return opening + body
	}
	return opening + fmt.Sprintf("%q lines up with the goals we see most often for profiles like yours.", item.Title)
}

func (s *RationaleService) typeSpecificBody(item domain.CatalogItem, signals domain.BehavioralSignals) string {
	types := map[string]bool{}
	for _, t := range item.RecommendationTypes {
		types[t] = true
	}

	if types[domain.RecTypeCreditManagement] || types[domain.RecTypeDebtPaydown] {
		if body := creditBody(item, signals); body != "" {
			return body
		}
	}
	if types[domain.RecTypeSubscriptionAudit] || item.OfferCategory == "subscription_management" {
		if body := subscriptionBody(item, signals); body != "" {
			return body
		}
	}
	if types[domain.RecTypeSavingsGrowth] || types[domain.RecTypeEmergencyFund] ||
		item.OfferCategory == "savings_account" || item.OfferCategory == "savings_app" {
		if body := savingsBody(item, signals); body != "" {
			return body
		}
	}
	if types[domain.RecTypeIncomeSmoothing] || types[domain.RecTypeBudgeting] {
		if body := incomeBody(item, signals); body != "" {
			return body
		}
	}
	if types[domain.RecTypeGettingStarted] {
		return fmt.Sprintf("with %d linked account(s) and %d days of history, %q is a practical first step.",
			signals.TotalAccounts, signals.AccountAgeDays, item.Title)
	}
	return ""
}

func creditBody(item domain.CatalogItem, signals domain.BehavioralSignals) string {
	m := freshest(signals.Credit.ShortTerm, signals.Credit.LongTerm)
	if m == nil || len(m.Cards) == 0 {
		return ""
	}
	card := worstCard(m)
	body := fmt.Sprintf("your card ending in %s is using $%.2f of its $%.2f limit (%.0f%% utilization)",
		card.Mask, card.Balance, card.CreditLimit, card.Utilization*100)
	if m.HasInterestCharges {
		body += " and is accruing interest charges"
	}
	return body + fmt.Sprintf(" — %q targets exactly that.", item.Title)
}

func subscriptionBody(item domain.CatalogItem, signals domain.BehavioralSignals) string {
	m := freshest(signals.Subscriptions.ShortTerm, signals.Subscriptions.LongTerm)
	if m == nil || m.RecurringMerchantCount == 0 {
		return ""
	}
	return fmt.Sprintf("you pay %d recurring merchant(s) about $%.2f per month (%.0f%% of your spending), and %q helps you decide which ones to keep.",
		m.RecurringMerchantCount, m.TotalMonthlyRecurringSpend, m.SubscriptionShare*100, item.Title)
}

func savingsBody(item domain.CatalogItem, signals domain.BehavioralSignals) string {
	m := freshest(signals.Savings.ShortTerm, signals.Savings.LongTerm)
	if m == nil {
		return ""
	}
	return fmt.Sprintf("your savings balance of $%.2f covers %.1f months of expenses and is adding about $%.2f per month — %q builds on that momentum.",
		m.SavingsBalance, m.EmergencyFundCoverageMonths, m.MonthlyNetInflow, item.Title)
}

func incomeBody(item domain.CatalogItem, signals domain.BehavioralSignals) string {
	m := freshest(signals.Income.ShortTerm, signals.Income.LongTerm)
	if m == nil {
		return ""
	}
	return fmt.Sprintf("your deposits arrive about every %.0f days and your cash on hand covers %.1f months of spending — %q is built for that pattern.",
		m.MedianPayGapDays, m.CashFlowBufferMonths, item.Title)
}

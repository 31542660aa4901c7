package service

import (
	"fmt"

	"wellness-engine/domain"
)

// PersonaDefinition pairs the serializable persona with its predicate and
// rationale builder. Rationales cite the same window that satisfied the
// predicate.
type PersonaDefinition struct {
	Persona   domain.Persona
	Matches   func(domain.BehavioralSignals) bool
	Rationale func(domain.BehavioralSignals) string
}

// Window fallback policy: a predicate holds when EITHER window satisfies its
// thresholds, short term checked first. Missing windows are skipped, never
// treated as zero-valued evidence.
func eitherSubscriptionWindow(s domain.SubscriptionSignals, cond func(*domain.SubscriptionMetrics) bool) *domain.SubscriptionMetrics {
	if s.ShortTerm != nil && cond(s.ShortTerm) {
		return s.ShortTerm
	}
	if s.LongTerm != nil && cond(s.LongTerm) {
		return s.LongTerm
	}
	return nil
}

func eitherSavingsWindow(s domain.SavingsSignals, cond func(*domain.SavingsMetrics) bool) *domain.SavingsMetrics {
	if s.ShortTerm != nil && cond(s.ShortTerm) {
		return s.ShortTerm
	}
	if s.LongTerm != nil && cond(s.LongTerm) {
		return s.LongTerm
	}
	return nil
}

func eitherCreditWindow(s domain.CreditSignals, cond func(*domain.CreditMetrics) bool) *domain.CreditMetrics {
	if s.ShortTerm != nil && cond(s.ShortTerm) {
		return s.ShortTerm
	}
	if s.LongTerm != nil && cond(s.LongTerm) {
		return s.LongTerm
	}
	return nil
}

func eitherIncomeWindow(s domain.IncomeSignals, cond func(*domain.IncomeMetrics) bool) *domain.IncomeMetrics {
	if s.ShortTerm != nil && cond(s.ShortTerm) {
		return s.ShortTerm
	}
	if s.LongTerm != nil && cond(s.LongTerm) {
		return s.LongTerm
	}
	return nil
}

func creditInDistress(m *domain.CreditMetrics) bool {
	return m.MeetsThreshold || m.HasInterestCharges || m.HasMinimumPaymentOnly || m.HasOverdue
}

func savingsGrowing(m *domain.SavingsMetrics) bool {
	return m.GrowthRate >= SavingsMinGrowthRate || m.MonthlyNetInflow >= SavingsMinMonthlyInflow
}

func subscriptionHeavy(m *domain.SubscriptionMetrics) bool {
	return m.RecurringMerchantCount >= SubscriptionMinMerchants &&
		(m.TotalMonthlyRecurringSpend >= SubscriptionMinMonthlySpend ||
			m.SubscriptionShare >= SubscriptionMinShare)
}

func incomeStretched(m *domain.IncomeMetrics) bool {
	// Both conditions must hold on the same window.
	return m.MedianPayGapDays > VariableIncomeMinGapDays &&
		m.CashFlowBufferMonths < VariableIncomeMaxBuffer
}

// allCardsLowUtilization is vacuously true for users without credit cards.
// It reads the freshest available window.
func allCardsLowUtilization(s domain.CreditSignals) bool {
	metrics := s.ShortTerm
	if metrics == nil {
		metrics = s.LongTerm
	}
	if metrics == nil {
		return true
	}
	for _, c := range metrics.Cards {
		if c.Tier != domain.UtilizationLow {
			return false
		}
	}
	return true
}

// worstCard returns the card with the highest utilization.
func worstCard(m *domain.CreditMetrics) domain.CardUtilization {
	worst := domain.CardUtilization{}
	for _, c := range m.Cards {
		if c.Utilization >= worst.Utilization {
			worst = c
		}
	}
	return worst
}

// PersonaCatalog returns the five fixed persona definitions. Priorities are
// unique by construction; the prioritizer relies on that.
func PersonaCatalog() []PersonaDefinition {
	return []PersonaDefinition{
		{
			Persona: domain.Persona{
				ID:          domain.PersonaHighUtilization,
				Name:        "High Utilization",
				Priority:    5,
				Description: "Carrying revolving balances close to their limits, paying interest, or falling behind.",
				RecommendationTypes: []string{
					domain.RecTypeCreditManagement, domain.RecTypeDebtPaydown,
				},
			},
			Matches: func(sig domain.BehavioralSignals) bool {
				return eitherCreditWindow(sig.Credit, creditInDistress) != nil
			},
			Rationale: func(sig domain.BehavioralSignals) string {
				m := eitherCreditWindow(sig.Credit, creditInDistress)
				if m == nil {
					return ""
				}
				card := worstCard(m)
				rationale := fmt.Sprintf("Your card ending in %s is using $%.2f of its $%.2f limit (%.0f%% utilization).",
					card.Mask, card.Balance, card.CreditLimit, card.Utilization*100)
				if m.HasOverdue {
					rationale += " One of your accounts has an overdue payment."
				} else if m.HasInterestCharges {
					rationale += " Your statements also show interest charges."
				} else if m.HasMinimumPaymentOnly {
					rationale += " Recent payments have covered only the minimum due."
				}
				return rationale
			},
		},
		{
			Persona: domain.Persona{
				ID:          domain.PersonaVariableIncome,
				Name:        "Variable Income Budgeter",
				Priority:    4,
				Description: "Income arrives at long, uneven intervals while the cash buffer stays thin.",
				RecommendationTypes: []string{
					domain.RecTypeBudgeting, domain.RecTypeIncomeSmoothing, domain.RecTypeEmergencyFund,
				},
			},
			Matches: func(sig domain.BehavioralSignals) bool {
				return eitherIncomeWindow(sig.Income, incomeStretched) != nil
			},
			Rationale: func(sig domain.BehavioralSignals) string {
				m := eitherIncomeWindow(sig.Income, incomeStretched)
				if m == nil {
					return ""
				}
				return fmt.Sprintf("Your deposits arrive about every %.0f days, while your cash on hand covers %.1f months of typical spending.",
					m.MedianPayGapDays, m.CashFlowBufferMonths)
			},
		},
		{
			Persona: domain.Persona{
				ID:          domain.PersonaSubscriptionHeavy,
				Name:        "Subscription-Heavy",
				Priority:    3,
				Description: "A meaningful share of spending goes to recurring merchants.",
				RecommendationTypes: []string{
					domain.RecTypeSubscriptionAudit, domain.RecTypeBudgeting,
				},
			},
			Matches: func(sig domain.BehavioralSignals) bool {
				return eitherSubscriptionWindow(sig.Subscriptions, subscriptionHeavy) != nil
			},
			Rationale: func(sig domain.BehavioralSignals) string {
				m := eitherSubscriptionWindow(sig.Subscriptions, subscriptionHeavy)
				if m == nil {
					return ""
				}
				return fmt.Sprintf("You pay %d recurring merchants about $%.2f per month, %.0f%% of your spending in this period.",
					m.RecurringMerchantCount, m.TotalMonthlyRecurringSpend, m.SubscriptionShare*100)
			},
		},
		{
			Persona: domain.Persona{
				ID:          domain.PersonaSavingsBuilder,
				Name:        "Savings Builder",
				Priority:    2,
				Description: "Savings are growing steadily and credit cards stay lightly used.",
				RecommendationTypes: []string{
					domain.RecTypeSavingsGrowth, domain.RecTypeEmergencyFund,
				},
			},
			Matches: func(sig domain.BehavioralSignals) bool {
				return eitherSavingsWindow(sig.Savings, savingsGrowing) != nil &&
					allCardsLowUtilization(sig.Credit)
			},
			Rationale: func(sig domain.BehavioralSignals) string {
				m := eitherSavingsWindow(sig.Savings, savingsGrowing)
				if m == nil {
					return ""
				}
				return fmt.Sprintf("Your savings balance of $%.2f grew %.1f%% this period, adding about $%.2f per month, and covers %.1f months of expenses.",
					m.SavingsBalance, m.GrowthRate*100, m.MonthlyNetInflow, m.EmergencyFundCoverageMonths)
			},
		},
		{
			Persona: domain.Persona{
				ID:          domain.PersonaNewUser,
				Name:        "New User",
				Priority:    1,
				Description: "A recently opened profile with little history to read signals from yet.",
				RecommendationTypes: []string{
					domain.RecTypeGettingStarted, domain.RecTypeBudgeting,
				},
			},
			Matches: func(sig domain.BehavioralSignals) bool {
				return sig.AccountAgeDays <= NewUserMaxAccountAgeDays &&
					(sig.CreditCardCount == 0 || sig.AllLimitsUnder) &&
					sig.TotalAccounts <= NewUserMaxAccounts
			},
			Rationale: func(sig domain.BehavioralSignals) string {
				return fmt.Sprintf("Your profile is %d days old with %d linked account(s), so we start with the basics.",
					sig.AccountAgeDays, sig.TotalAccounts)
			},
		},
	}
}

// FallbackPersona returns the New User definition, the guaranteed answer
// when no predicate matches.
func FallbackPersona() PersonaDefinition {
	defs := PersonaCatalog()
	return defs[len(defs)-1]
}

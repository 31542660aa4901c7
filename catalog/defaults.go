package catalog

import "wellness-engine/domain"

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// DefaultEducationItems returns the built-in education catalog. Content is
// pre-vetted for tone before it ships; it is not re-validated per request.
func DefaultEducationItems() []domain.CatalogItem {
	return []domain.CatalogItem{
		{
			ID:          "edu_utilization_basics",
			Title:       "Understanding Credit Utilization",
			Description: "How the share of your credit limit you use affects your score, and why staying under 30% helps.",
			PersonaFit:  []string{domain.PersonaHighUtilization, domain.PersonaNewUser},
			RecommendationTypes: []string{domain.RecTypeCreditManagement},
		},
		{
			ID:          "edu_paydown_strategies",
			Title:       "Two Ways to Pay Down Card Balances",
			Description: "Highest-rate-first and smallest-balance-first paydown plans, with the tradeoffs of each.",
			PersonaFit:  []string{domain.PersonaHighUtilization},
			RecommendationTypes: []string{domain.RecTypeDebtPaydown, domain.RecTypeCreditManagement},
		},
		{
			ID:          "edu_interest_charges",
			Title:       "How Credit Card Interest Is Charged",
			Description: "Grace periods, daily balances, and what carrying a statement balance actually costs.",
			PersonaFit:  []string{domain.PersonaHighUtilization},
			RecommendationTypes: []string{domain.RecTypeCreditManagement, domain.RecTypeDebtPaydown},
		},
		{
			ID:          "edu_minimum_payments",
			Title:       "What Minimum Payments Really Cover",
			Description: "Why minimum-only payments extend payoff timelines, with a worked example.",
			PersonaFit:  []string{domain.PersonaHighUtilization},
			RecommendationTypes: []string{domain.RecTypeDebtPaydown},
		},
		{
			ID:          "edu_irregular_income_budget",
			Title:       "Budgeting on an Irregular Income",
			Description: "Build a baseline month from your lowest recent income and treat the rest as variable.",
			PersonaFit:  []string{domain.PersonaVariableIncome},
			RecommendationTypes: []string{domain.RecTypeBudgeting, domain.RecTypeIncomeSmoothing},
		},
		{
			ID:          "edu_income_smoothing",
			Title:       "Smoothing Cash Flow Between Paychecks",
			Description: "Using a buffer account to turn uneven deposits into a steady monthly paycheck.",
			PersonaFit:  []string{domain.PersonaVariableIncome},
			RecommendationTypes: []string{domain.RecTypeIncomeSmoothing, domain.RecTypeEmergencyFund},
		},
		{
			ID:          "edu_buffer_first",
			Title:       "Why a One-Month Buffer Comes First",
			Description: "A single month of expenses in checking removes most timing stress from variable pay.",
			PersonaFit:  []string{domain.PersonaVariableIncome, domain.PersonaSavingsBuilder},
			RecommendationTypes: []string{domain.RecTypeEmergencyFund, domain.RecTypeBudgeting},
		},
		{
			ID:          "edu_subscription_audit",
			Title:       "Auditing Your Subscriptions",
			Description: "A 20-minute walkthrough of your recurring charges and which ones still earn their keep.",
			PersonaFit:  []string{domain.PersonaSubscriptionHeavy},
			RecommendationTypes: []string{domain.RecTypeSubscriptionAudit, domain.RecTypeBudgeting},
		},
		{
			ID:          "edu_negotiate_bills",
			Title:       "Negotiating Recurring Bills",
			Description: "Scripts and timing for lowering internet, streaming, and insurance renewals.",
			PersonaFit:  []string{domain.PersonaSubscriptionHeavy},
			RecommendationTypes: []string{domain.RecTypeSubscriptionAudit},
		},
		{
			ID:          "edu_free_trials",
			Title:       "Keeping Free Trials Free",
			Description: "Tracking trial end dates so conversions to paid plans are a choice, not a surprise.",
			PersonaFit:  []string{domain.PersonaSubscriptionHeavy, domain.PersonaNewUser},
			RecommendationTypes: []string{domain.RecTypeSubscriptionAudit},
		},
		{
			ID:          "edu_emergency_fund",
			Title:       "Emergency Funds, Sized Right",
			Description: "How many months of expenses to target and where to keep the money.",
			PersonaFit:  []string{domain.PersonaSavingsBuilder, domain.PersonaNewUser},
			RecommendationTypes: []string{domain.RecTypeEmergencyFund, domain.RecTypeSavingsGrowth},
		},
		{
			ID:          "edu_savings_goals",
			Title:       "Setting Savings Goals That Stick",
			Description: "Turning a growth streak into named goals with automatic transfers.",
			PersonaFit:  []string{domain.PersonaSavingsBuilder},
			RecommendationTypes: []string{domain.RecTypeSavingsGrowth},
		},
		{
			ID:          "edu_yield_basics",
			Title:       "Where Savings Interest Comes From",
			Description: "APY, compounding, and what moving idle cash to a higher rate is worth per year.",
			PersonaFit:  []string{domain.PersonaSavingsBuilder},
			RecommendationTypes: []string{domain.RecTypeSavingsGrowth},
		},
		{
			ID:          "edu_getting_started",
			Title:       "Your First Monthly Budget",
			Description: "A three-category starter budget you can set up in one evening.",
			PersonaFit:  []string{domain.PersonaNewUser},
			RecommendationTypes: []string{domain.RecTypeGettingStarted, domain.RecTypeBudgeting},
		},
		{
			ID:          "edu_credit_scores",
			Title:       "How Credit Scores Work",
			Description: "The five factors behind a score and which ones matter in your first year.",
			PersonaFit:  []string{domain.PersonaNewUser},
			RecommendationTypes: []string{domain.RecTypeGettingStarted, domain.RecTypeCreditManagement},
		},
		{
			ID:          "edu_banking_basics",
			Title:       "Checking, Savings, and What Goes Where",
			Description: "Splitting spending money from saved money so both are easier to track.",
			PersonaFit:  []string{domain.PersonaNewUser},
			RecommendationTypes: []string{domain.RecTypeGettingStarted},
		},
	}
}

// DefaultPartnerOffers returns the built-in partner offer catalog. Every
// offer carries explicit eligibility rules; offers without rules are gated
// only by the prohibited-product blocklist.
func DefaultPartnerOffers() []domain.CatalogItem {
	return []domain.CatalogItem{
		{
			ID:            "offer_balance_transfer",
			Title:         "0% Intro APR Balance Transfer Card",
			Description:   "Move high-rate balances to a card with an introductory 0% APR period.",
			OfferCategory: "balance_transfer",
			Partner:       "Meridian Card Services",
			PersonaFit:    []string{domain.PersonaHighUtilization},
			RecommendationTypes: []string{domain.RecTypeCreditManagement, domain.RecTypeDebtPaydown},
			Eligibility: &domain.EligibilityRules{
				MinCreditScore: intPtr(640),
				MaxUtilization: floatPtr(0.95),
			},
		},
		{
			ID:            "offer_consolidation_loan",
			Title:         "Fixed-Rate Debt Consolidation Loan",
			Description:   "Replace several card balances with one fixed monthly payment.",
			OfferCategory: "personal_loan",
			Partner:       "Granite Lending",
			PersonaFit:    []string{domain.PersonaHighUtilization},
			RecommendationTypes: []string{domain.RecTypeDebtPaydown},
			Eligibility: &domain.EligibilityRules{
				MinAnnualIncome: floatPtr(30000),
				MinCreditScore:  intPtr(620),
			},
		},
		{
			ID:            "offer_hysa",
			Title:         "High-Yield Savings Account",
			Description:   "An FDIC-insured savings account paying a competitive APY on every dollar.",
			OfferCategory: "savings_account",
			Partner:       "Northbridge Bank",
			PersonaFit:    []string{domain.PersonaSavingsBuilder},
			RecommendationTypes: []string{domain.RecTypeSavingsGrowth, domain.RecTypeEmergencyFund},
			Eligibility: &domain.EligibilityRules{
				ExcludedAccountTypes: []string{"savings_account"},
			},
		},
		{
			ID:            "offer_roundup_app",
			Title:         "Automatic Round-Up Savings",
			Description:   "Rounds each purchase to the next dollar and saves the difference automatically.",
			OfferCategory: "savings_app",
			Partner:       "Acorn Lane",
			PersonaFit:    []string{domain.PersonaSavingsBuilder, domain.PersonaNewUser},
			RecommendationTypes: []string{domain.RecTypeSavingsGrowth, domain.RecTypeGettingStarted},
		},
		{
			ID:            "offer_subscription_manager",
			Title:         "Subscription Tracking App",
			Description:   "Finds recurring charges across your accounts and cancels unused ones for you.",
			OfferCategory: "subscription_management",
			Partner:       "TrimKit",
			PersonaFit:    []string{domain.PersonaSubscriptionHeavy},
			RecommendationTypes: []string{domain.RecTypeSubscriptionAudit, domain.RecTypeBudgeting},
		},
		{
			ID:            "offer_budgeting_premium",
			Title:         "Flexible Budgeting App, Premium Plan",
			Description:   "Envelope budgeting tuned for uneven income, with paycheck smoothing built in.",
			OfferCategory: "budgeting_app",
			Partner:       "Evenkeel",
			PersonaFit:    []string{domain.PersonaVariableIncome, domain.PersonaSubscriptionHeavy},
			RecommendationTypes: []string{domain.RecTypeBudgeting, domain.RecTypeIncomeSmoothing},
		},
		{
			ID:            "offer_secured_card",
			Title:         "Secured Starter Credit Card",
			Description:   "Build a credit history with a deposit-backed card and no annual fee.",
			OfferCategory: "secured_card",
			Partner:       "Meridian Card Services",
			PersonaFit:    []string{domain.PersonaNewUser},
			RecommendationTypes: []string{domain.RecTypeGettingStarted, domain.RecTypeCreditManagement},
			Eligibility: &domain.EligibilityRules{
				ExcludedAccountTypes: []string{"credit_card"},
			},
		},
		{
			ID:            "offer_credit_builder",
			Title:         "Credit Builder Installment Plan",
			Description:   "Small reported installment payments that establish a payment history.",
			OfferCategory: "credit_builder",
			Partner:       "Granite Lending",
			PersonaFit:    []string{domain.PersonaNewUser},
			RecommendationTypes: []string{domain.RecTypeGettingStarted},
			Eligibility: &domain.EligibilityRules{
				MinAnnualIncome: floatPtr(12000),
			},
		},
	}
}

package domain

// Recommendation types shared between personas and catalog entries.
const (
	RecTypeCreditManagement  = "credit_management"
	RecTypeDebtPaydown       = "debt_paydown"
	RecTypeBudgeting         = "budgeting"
	RecTypeSubscriptionAudit = "subscription_audit"
	RecTypeSavingsGrowth     = "savings_growth"
	RecTypeEmergencyFund     = "emergency_fund"
	RecTypeIncomeSmoothing   = "income_smoothing"
	RecTypeGettingStarted    = "getting_started"
)

// EligibilityRules are the optional gating criteria attached to a partner
// offer. A nil threshold means the criterion is not required.
type EligibilityRules struct {
	MinAnnualIncome      *float64 `json:"min_annual_income,omitempty" yaml:"min_annual_income,omitempty"`
	MinCreditScore       *int     `json:"min_credit_score,omitempty" yaml:"min_credit_score,omitempty"`
	MaxUtilization       *float64 `json:"max_utilization,omitempty" yaml:"max_utilization,omitempty"`
	ExcludedAccountTypes []string `json:"excluded_account_types,omitempty" yaml:"excluded_account_types,omitempty"`
}

// CatalogItem is one education item or partner offer. Catalog data is
// read-only at runtime; request processing never mutates it.
type CatalogItem struct {
	ID                  string            `json:"id" yaml:"id"`
	Title               string            `json:"title" yaml:"title"`
	Description         string            `json:"description" yaml:"description"`
	OfferCategory       string            `json:"offer_category,omitempty" yaml:"offer_category,omitempty"`
	Partner             string            `json:"partner,omitempty" yaml:"partner,omitempty"`
	PersonaFit          []string          `json:"persona_fit" yaml:"persona_fit"`
	RecommendationTypes []string          `json:"recommendation_types" yaml:"recommendation_types"`
	Eligibility         *EligibilityRules `json:"eligibility,omitempty" yaml:"eligibility,omitempty"`
}

// EligibilityResult is the outcome of checking one offer for one user.
type EligibilityResult struct {
	IsEligible    bool     `json:"is_eligible"`
	Reasons       []string `json:"reasons"`
	Disqualifiers []string `json:"disqualifiers"`
}

// FinancialSummary is the eligibility context derived from behavioral
// signals. Income and credit score are heuristic estimates, not bureau
// data; downstream checks must treat them as such.
type FinancialSummary struct {
	EstimatedAnnualIncome float64 `json:"estimated_annual_income"`
	EstimatedCreditScore  int     `json:"estimated_credit_score"`
	MaxUtilization        float64 `json:"max_utilization"`
	HasOverdueAccounts    bool    `json:"has_overdue_accounts"`
}

const (
	RecommendationTypeEducation = "education"
	RecommendationTypeOffer     = "offer"
)

// Recommendation is one surfaced item with its mandatory rationale.
type Recommendation struct {
	Type             string             `json:"type"` // education | offer
	Item             CatalogItem        `json:"item"`
	Rationale        string             `json:"rationale"`
	EligibilityCheck *EligibilityResult `json:"eligibility_check,omitempty"`
}

// RecommendationSet is the full payload returned to the caller.
type RecommendationSet struct {
	UserID           string            `json:"user_id"`
	Persona          Persona           `json:"persona"`
	PersonaRationale string            `json:"persona_rationale"`
	Education        []Recommendation  `json:"education"`
	PartnerOffers    []Recommendation  `json:"partner_offers"`
	Summary          SelectionSummary  `json:"summary"`
	FinancialSummary FinancialSummary  `json:"financial_summary"`
	DecisionTrace    DecisionTrace     `json:"decision_trace"`
	Disclaimer       string            `json:"disclaimer"`
}

// SelectionSummary carries the counts downstream consumers report on.
type SelectionSummary struct {
	EducationCount     int `json:"education_count"`
	PartnerOfferCount  int `json:"partner_offer_count"`
	OffersFilteredOut  int `json:"offers_filtered_out"`
}

// SelectionOptions bound how many items a selector may return.
type SelectionOptions struct {
	MinItems int `json:"min_items"`
	MaxItems int `json:"max_items"`
}

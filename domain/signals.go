package domain

// Window identifies the trailing lookback period a metrics snapshot covers.
type Window string

const (
	WindowShortTerm Window = "short_term" // 30 days
	WindowLongTerm  Window = "long_term"  // 180 days

	WindowShortTermDays = 30
	WindowLongTermDays  = 180
)

// UtilizationTier buckets a card's balance/limit ratio.
type UtilizationTier string

const (
	UtilizationLow      UtilizationTier = "low"       // < 30%
	UtilizationMedium   UtilizationTier = "medium"    // 30–50%
	UtilizationHigh     UtilizationTier = "high"      // 50–80%
	UtilizationVeryHigh UtilizationTier = "very_high" // >= 80%
)

// SubscriptionMetrics is one window's view of recurring merchant activity.
// A nil *SubscriptionMetrics means the window had no transactions: absence
// of evidence, never a zero-valued snapshot.
type SubscriptionMetrics struct {
	Window                     Window            `json:"window"`
	RecurringMerchantCount     int               `json:"recurring_merchant_count"`
	RecurringMerchants         []string          `json:"recurring_merchants"`
	TotalMonthlyRecurringSpend float64           `json:"total_monthly_recurring_spend"`
	SubscriptionShare          float64           `json:"subscription_share"`
	MerchantMonthlySpend       map[string]float64 `json:"merchant_monthly_spend,omitempty"`
}

type SavingsMetrics struct {
	Window                      Window  `json:"window"`
	NetInflow                   float64 `json:"net_inflow"`
	MonthlyNetInflow            float64 `json:"monthly_net_inflow"`
	GrowthRate                  float64 `json:"growth_rate"`
	SavingsBalance              float64 `json:"savings_balance"`
	AverageMonthlyExpenses      float64 `json:"average_monthly_expenses"`
	EmergencyFundCoverageMonths float64 `json:"emergency_fund_coverage_months"`
}

// CardUtilization is the per-card slice of a credit snapshot.
type CardUtilization struct {
	AccountID   string          `json:"account_id"`
	Mask        string          `json:"mask"`
	Balance     float64         `json:"balance"`
	CreditLimit float64         `json:"credit_limit"`
	Utilization float64         `json:"utilization"`
	Tier        UtilizationTier `json:"tier"`
}

type CreditMetrics struct {
	Window                Window            `json:"window"`
	Cards                 []CardUtilization `json:"cards"`
	MaxUtilization        float64           `json:"max_utilization"`
	HasInterestCharges    bool              `json:"has_interest_charges"`
	HasOverdue            bool              `json:"has_overdue"`
	HasMinimumPaymentOnly bool              `json:"has_minimum_payment_only"`
	MeetsThreshold        bool              `json:"meets_threshold"`
}

type IncomeMetrics struct {
	Window               Window  `json:"window"`
	PayrollDepositCount  int     `json:"payroll_deposit_count"`
	AverageDepositAmount float64 `json:"average_deposit_amount"`
	MedianPayGapDays     float64 `json:"median_pay_gap_days"`
	HasVariableIncome    bool    `json:"has_variable_income"`
	LiquidBalance        float64 `json:"liquid_balance"`
	CashFlowBufferMonths float64 `json:"cash_flow_buffer_months"`
}

// SubscriptionSignals pairs the two windows of one domain. Either side may
// be nil when the window carried no relevant transactions.
type SubscriptionSignals struct {
	ShortTerm *SubscriptionMetrics `json:"short_term"`
	LongTerm  *SubscriptionMetrics `json:"long_term"`
}

type SavingsSignals struct {
	ShortTerm *SavingsMetrics `json:"short_term"`
	LongTerm  *SavingsMetrics `json:"long_term"`
}

type CreditSignals struct {
	ShortTerm *CreditMetrics `json:"short_term"`
	LongTerm  *CreditMetrics `json:"long_term"`
}

type IncomeSignals struct {
	ShortTerm *IncomeMetrics `json:"short_term"`
	LongTerm  *IncomeMetrics `json:"long_term"`
}

// BehavioralSignals is the full extractor output for one user, computed
// fresh per orchestration call and never mutated afterwards.
type BehavioralSignals struct {
	Subscriptions SubscriptionSignals `json:"subscriptions"`
	Savings       SavingsSignals      `json:"savings"`
	Credit        CreditSignals       `json:"credit"`
	Income        IncomeSignals       `json:"income"`

	AccountAgeDays  int  `json:"account_age_days"`
	TotalAccounts   int  `json:"total_accounts"`
	CreditCardCount int  `json:"credit_card_count"`
	AllLimitsUnder  bool `json:"all_limits_under_1000"`
}

// DetectedBehaviorCount counts the domains with evidence in at least one
// window. The evaluation report uses it for the coverage metric.
func (b BehavioralSignals) DetectedBehaviorCount() int {
	count := 0
	if b.Subscriptions.ShortTerm != nil || b.Subscriptions.LongTerm != nil {
		count++
	}
	if b.Savings.ShortTerm != nil || b.Savings.LongTerm != nil {
		count++
	}
	if b.Credit.ShortTerm != nil || b.Credit.LongTerm != nil {
		count++
	}
	if b.Income.ShortTerm != nil || b.Income.LongTerm != nil {
		count++
	}
	return count
}

package service

const (
	// Recurring-merchant detection.
	MinRecurringOccurrences = 3
	RecurringPeriodDays     = 90.0 // occurrences must fit a 90-day span
	MinRecurringGapDays     = 5.0  // filters same-week burst spending
	RecurringGapTolerance   = 12.0 // max deviation from the median gap, days

	// Persona thresholds.
	SubscriptionMinMerchants    = 3
	SubscriptionMinMonthlySpend = 50.0
	SubscriptionMinShare        = 0.10
	SavingsMinGrowthRate        = 0.02
	SavingsMinMonthlyInflow     = 200.0
	VariableIncomeMinGapDays    = 45.0
	VariableIncomeMaxBuffer     = 1.0
	NewUserMaxAccountAgeDays    = 90
	NewUserMaxAccounts          = 2
	NewUserMaxCreditLimit       = 1000.0

	// Credit utilization tiers.
	UtilizationMediumThreshold   = 0.30
	UtilizationHighThreshold     = 0.50
	UtilizationVeryHighThreshold = 0.80

	// Income detection.
	MinPayrollDepositAmount = 200.0
	PayGapIrregularityDays  = 10.0 // gap deviation beyond which income is variable

	// Eligibility estimates (behavioral, not bureau data).
	EstimatedScoreBase         = 700
	EstimatedScoreHighUtil     = 650
	EstimatedScoreDistressed   = 600
	EstimatedScoreHealthy      = 720
	MinimumPaymentMatchDollars = 5.0

	// Selection bounds (defaults; config may override).
	DefaultEducationMin = 3
	DefaultEducationMax = 5
	DefaultOffersMax    = 3

	// Content scoring.
	PersonaFitScore  = 10
	TypeOverlapScore = 5
)

// Disclaimer is attached verbatim to every recommendation payload.
const Disclaimer = "This content is educational and informational only. It is not " +
	"financial, legal, or tax advice. Income and credit score figures are " +
	"estimates derived from account activity, not credit bureau data. Partner " +
	"offers may compensate us; review full terms with the partner before applying."

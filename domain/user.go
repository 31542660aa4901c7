package domain

import "time"

// Account types and subtypes follow the aggregator naming the synthetic
// data generator produces ("depository"/"checking", "credit"/"credit card").
const (
	AccountTypeDepository = "depository"
	AccountTypeCredit     = "credit"
	AccountTypeLoan       = "loan"

	AccountSubtypeChecking   = "checking"
	AccountSubtypeSavings    = "savings"
	AccountSubtypeCreditCard = "credit card"
)

type User struct {
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"created_at"`
	ConsentGranted bool      `json:"consent_granted"`
}

type Account struct {
	AccountID        string  `json:"account_id"`
	UserID           string  `json:"user_id"`
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	Subtype          string  `json:"subtype"`
	Mask             string  `json:"mask"` // last 4 digits
	AvailableBalance float64 `json:"available_balance"`
	CurrentBalance   float64 `json:"current_balance"`
	CreditLimit      float64 `json:"credit_limit"`
}

// Transaction amounts use the aggregator sign convention: positive amounts
// are money out (spend), negative amounts are money in (deposits).
type Transaction struct {
	TransactionID string    `json:"transaction_id"`
	AccountID     string    `json:"account_id"`
	UserID        string    `json:"user_id"`
	Date          time.Time `json:"date"`
	Amount        float64   `json:"amount"`
	MerchantName  string    `json:"merchant_name"`
	Category      string    `json:"category"`
	Pending       bool      `json:"pending"`
}

type Liability struct {
	AccountID            string    `json:"account_id"`
	UserID               string    `json:"user_id"`
	APR                  float64   `json:"apr"`
	MinimumPaymentAmount float64   `json:"minimum_payment_amount"`
	IsOverdue            bool      `json:"is_overdue"`
	LastStatementBalance float64   `json:"last_statement_balance"`
	NextPaymentDueDate   time.Time `json:"next_payment_due_date"`
}

// IsCreditCard reports whether the account is a revolving credit card.
func (a Account) IsCreditCard() bool {
	return a.Type == AccountTypeCredit
}

// IsDepository reports whether the account holds liquid cash.
func (a Account) IsDepository() bool {
	return a.Type == AccountTypeDepository
}

// IsSavings reports whether the account is a savings-style depository account.
func (a Account) IsSavings() bool {
	return a.Type == AccountTypeDepository && a.Subtype == AccountSubtypeSavings
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness-engine/domain"
)

func TestAnalyzeIncome_RegularPayroll(t *testing.T) {
	const userID = "u1"
	checking := checkingAccount(userID, "acc_chk", 3000)

	txns := []domain.Transaction{}
	// Biweekly paychecks across the long window.
	txns = append(txns, repeatTxn(userID, checking.AccountID, 6, 14, 12, -2100, "Acme Payroll", "payroll")...)
	txns = append(txns, repeatTxn(userID, checking.AccountID, 9, 30, 6, 1200, "Maple Court Apartments", "rent")...)

	repo := newTestRepo(consentedUser(userID, 400), []domain.Account{checking}, txns, nil)
	svc := NewIncomeService(repo)
	svc.now = fixedNow

	signals, err := svc.AnalyzeIncomeForUser(userID)
	require.NoError(t, err)

	require.NotNil(t, signals.LongTerm)
	long := signals.LongTerm
	assert.Equal(t, 12, long.PayrollDepositCount)
	assert.InDelta(t, 2100, long.AverageDepositAmount, 0.01)
	assert.InDelta(t, 14, long.MedianPayGapDays, 0.01)
	assert.False(t, long.HasVariableIncome)
	// $3,000 liquid over $1,200 monthly expenses.
	assert.InDelta(t, 2.5, long.CashFlowBufferMonths, 0.01)
}

func TestAnalyzeIncome_IrregularGapsFlagVariable(t *testing.T) {
	const userID = "u1"
	checking := checkingAccount(userID, "acc_chk", 800)

	// Gaps of 20, 70, and 45 days around a median of 45.
	txns := []domain.Transaction{
		testTxn(userID, checking.AccountID, 5, -1800, "Gig Platform Payout", "payroll"),
		testTxn(userID, checking.AccountID, 25, -1500, "Gig Platform Payout", "payroll"),
		testTxn(userID, checking.AccountID, 95, -2200, "Gig Platform Payout", "payroll"),
		testTxn(userID, checking.AccountID, 140, -1700, "Gig Platform Payout", "payroll"),
	}
	txns = append(txns, repeatTxn(userID, checking.AccountID, 9, 30, 6, 1100, "Maple Court Apartments", "rent")...)

	repo := newTestRepo(consentedUser(userID, 400), []domain.Account{checking}, txns, nil)
	svc := NewIncomeService(repo)
	svc.now = fixedNow

	signals, err := svc.AnalyzeIncomeForUser(userID)
	require.NoError(t, err)

	require.NotNil(t, signals.LongTerm)
	long := signals.LongTerm
	assert.True(t, long.HasVariableIncome)
	assert.InDelta(t, 45, long.MedianPayGapDays, 0.01)
	assert.Less(t, long.CashFlowBufferMonths, 1.0)
}

func TestAnalyzeIncome_SmallDepositsIgnored(t *testing.T) {
	const userID = "u1"
	checking := checkingAccount(userID, "acc_chk", 500)

	// Cashback and refunds under the payroll floor never count as pay.
	txns := []domain.Transaction{
		testTxn(userID, checking.AccountID, 5, -12.50, "Cashback Reward", "deposit"),
		testTxn(userID, checking.AccountID, 18, -60, "Store Refund", "deposit"),
	}

	repo := newTestRepo(consentedUser(userID, 400), []domain.Account{checking}, txns, nil)
	svc := NewIncomeService(repo)
	svc.now = fixedNow

	signals, err := svc.AnalyzeIncomeForUser(userID)
	require.NoError(t, err)
	assert.Nil(t, signals.ShortTerm)
	assert.Nil(t, signals.LongTerm)
}

func TestAnalyzeIncome_CreditAccountDepositsExcluded(t *testing.T) {
	const userID = "u1"
	card := creditCardAccount(userID, "acc_card", "5555", 900, 3000)

	// Card payments look like large negative amounts but are not income.
	txns := repeatTxn(userID, card.AccountID, 12, 30, 4, -450, "Card Payment", "payment")

	repo := newTestRepo(consentedUser(userID, 400), []domain.Account{card}, txns, nil)
	svc := NewIncomeService(repo)
	svc.now = fixedNow

	signals, err := svc.AnalyzeIncomeForUser(userID)
	require.NoError(t, err)
	assert.Nil(t, signals.LongTerm)
}

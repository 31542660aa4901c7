package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness-engine/domain"
)

func TestAnalyzeSavings_GrowthAndCoverage(t *testing.T) {
	const userID = "u1"
	checking := checkingAccount(userID, "acc_chk", 2000)
	savings := savingsAccount(userID, "acc_sav", 6000)

	txns := []domain.Transaction{}
	// $500/month into savings for six months.
	txns = append(txns, repeatTxn(userID, savings.AccountID, 5, 30, 6, -500, "Transfer from Checking", "transfer")...)
	// $1,500/month of spending.
	txns = append(txns, repeatTxn(userID, checking.AccountID, 8, 30, 6, 1500, "Maple Court Apartments", "rent")...)

	repo := newTestRepo(consentedUser(userID, 400), []domain.Account{checking, savings}, txns, nil)
	svc := NewSavingsService(repo)
	svc.now = fixedNow

	signals, err := svc.AnalyzeSavingsForUser(userID)
	require.NoError(t, err)

	require.NotNil(t, signals.LongTerm)
	long := signals.LongTerm
	assert.InDelta(t, 3000, long.NetInflow, 0.01)
	assert.InDelta(t, 500, long.MonthlyNetInflow, 0.01)
	// Start balance 3000, inflow 3000: 100% growth.
	assert.InDelta(t, 1.0, long.GrowthRate, 0.001)
	// 6000 saved / 1500 monthly expenses = 4 months of coverage.
	assert.InDelta(t, 4.0, long.EmergencyFundCoverageMonths, 0.01)
}

func TestAnalyzeSavings_NoSavingsActivityYieldsNil(t *testing.T) {
	const userID = "u1"
	checking := checkingAccount(userID, "acc_chk", 2000)
	savings := savingsAccount(userID, "acc_sav", 6000)

	// Only checking activity: the savings windows carry no evidence.
	txns := repeatTxn(userID, checking.AccountID, 8, 30, 6, 1500, "Maple Court Apartments", "rent")

	repo := newTestRepo(consentedUser(userID, 400), []domain.Account{checking, savings}, txns, nil)
	svc := NewSavingsService(repo)
	svc.now = fixedNow

	signals, err := svc.AnalyzeSavingsForUser(userID)
	require.NoError(t, err)
	assert.Nil(t, signals.ShortTerm)
	assert.Nil(t, signals.LongTerm)
}

func TestAnalyzeSavings_WithdrawalsShrinkInflow(t *testing.T) {
	const userID = "u1"
	savings := savingsAccount(userID, "acc_sav", 1000)

	txns := []domain.Transaction{
		testTxn(userID, savings.AccountID, 10, -300, "Transfer from Checking", "transfer"),
		testTxn(userID, savings.AccountID, 20, 400, "Transfer to Checking", "transfer"),
	}

	repo := newTestRepo(consentedUser(userID, 400), []domain.Account{savings}, txns, nil)
	svc := NewSavingsService(repo)
	svc.now = fixedNow

	signals, err := svc.AnalyzeSavingsForUser(userID)
	require.NoError(t, err)
	require.NotNil(t, signals.ShortTerm)
	assert.InDelta(t, -100, signals.ShortTerm.NetInflow, 0.01)
	assert.LessOrEqual(t, signals.ShortTerm.GrowthRate, 0.0)
}

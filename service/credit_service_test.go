package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness-engine/domain"
)

func TestUtilizationTiers(t *testing.T) {
	tests := []struct {
		utilization float64
		want        domain.UtilizationTier
	}{
		{0.0, domain.UtilizationLow},
		{0.29, domain.UtilizationLow},
		{0.30, domain.UtilizationMedium},
		{0.49, domain.UtilizationMedium},
		{0.50, domain.UtilizationHigh},
		{0.79, domain.UtilizationHigh},
		{0.80, domain.UtilizationVeryHigh},
		{1.10, domain.UtilizationVeryHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, utilizationTier(tt.utilization), "utilization %.2f", tt.utilization)
	}
}

func TestAnalyzeCredit_HighUtilizationCard(t *testing.T) {
	const userID = "u1"
	card := creditCardAccount(userID, "acc_card", "4321", 4000, 5000)

	repo := newTestRepo(consentedUser(userID, 400), []domain.Account{card}, nil, nil)
	svc := NewCreditService(repo)
	svc.now = fixedNow

	signals, err := svc.AnalyzeCreditForUser(userID)
	require.NoError(t, err)

	require.NotNil(t, signals.ShortTerm)
	require.Len(t, signals.ShortTerm.Cards, 1)
	cardMetrics := signals.ShortTerm.Cards[0]
	assert.Equal(t, "4321", cardMetrics.Mask)
	assert.InDelta(t, 0.8, cardMetrics.Utilization, 0.001)
	assert.Equal(t, domain.UtilizationVeryHigh, cardMetrics.Tier)
	assert.True(t, signals.ShortTerm.MeetsThreshold)
	assert.False(t, signals.ShortTerm.HasOverdue)
}

func TestAnalyzeCredit_NoCardsYieldsNil(t *testing.T) {
	const userID = "u1"
	checking := checkingAccount(userID, "acc_chk", 500)

	repo := newTestRepo(consentedUser(userID, 400), []domain.Account{checking}, nil, nil)
	svc := NewCreditService(repo)
	svc.now = fixedNow

	signals, err := svc.AnalyzeCreditForUser(userID)
	require.NoError(t, err)
	assert.Nil(t, signals.ShortTerm)
	assert.Nil(t, signals.LongTerm)
}

func TestAnalyzeCredit_InterestAndMinimumPaymentFlags(t *testing.T) {
	const userID = "u1"
	card := creditCardAccount(userID, "acc_card", "9999", 1000, 4000)

	txns := []domain.Transaction{}
	txns = append(txns, repeatTxn(userID, card.AccountID, 10, 30, 3, 22.50, "Interest Charge", "interest charged")...)
	txns = append(txns, repeatTxn(userID, card.AccountID, 12, 30, 3, -35, "Card Payment", "payment")...)

	liab := domain.Liability{
		AccountID: card.AccountID, UserID: userID,
		APR: 24.9, MinimumPaymentAmount: 35, LastStatementBalance: 980,
	}

	repo := newTestRepo(consentedUser(userID, 400), []domain.Account{card}, txns, []domain.Liability{liab})
	svc := NewCreditService(repo)
	svc.now = fixedNow

	signals, err := svc.AnalyzeCreditForUser(userID)
	require.NoError(t, err)
	require.NotNil(t, signals.LongTerm)
	assert.True(t, signals.LongTerm.HasInterestCharges)
	assert.True(t, signals.LongTerm.HasMinimumPaymentOnly)
	// 25% utilization stays in the low tier.
	assert.False(t, signals.LongTerm.MeetsThreshold)
}

func TestAnalyzeCredit_LargerPaymentClearsMinimumOnlyFlag(t *testing.T) {
	const userID = "u1"
	card := creditCardAccount(userID, "acc_card", "9999", 1000, 4000)

	txns := []domain.Transaction{
		testTxn(userID, card.AccountID, 12, -35, "Card Payment", "payment"),
		testTxn(userID, card.AccountID, 42, -400, "Card Payment", "payment"),
	}
	liab := domain.Liability{
		AccountID: card.AccountID, UserID: userID,
		MinimumPaymentAmount: 35,
	}

	repo := newTestRepo(consentedUser(userID, 400), []domain.Account{card}, txns, []domain.Liability{liab})
	svc := NewCreditService(repo)
	svc.now = fixedNow

	signals, err := svc.AnalyzeCreditForUser(userID)
	require.NoError(t, err)
	require.NotNil(t, signals.LongTerm)
	assert.False(t, signals.LongTerm.HasMinimumPaymentOnly)
}

func TestAnalyzeCredit_OverdueSetsThreshold(t *testing.T) {
	const userID = "u1"
	card := creditCardAccount(userID, "acc_card", "1234", 100, 4000)
	liab := domain.Liability{
		AccountID: card.AccountID, UserID: userID, IsOverdue: true,
		MinimumPaymentAmount: 25,
	}

	repo := newTestRepo(consentedUser(userID, 400), []domain.Account{card}, nil, []domain.Liability{liab})
	svc := NewCreditService(repo)
	svc.now = fixedNow

	signals, err := svc.AnalyzeCreditForUser(userID)
	require.NoError(t, err)
	require.NotNil(t, signals.ShortTerm)
	assert.True(t, signals.ShortTerm.HasOverdue)
	assert.True(t, signals.ShortTerm.MeetsThreshold)
}

package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness-engine/domain"
	"wellness-engine/repository"
)

func TestAssignPersona_HighUtilizationWins(t *testing.T) {
	const userID = "u1"
	checking := checkingAccount(userID, "acc_chk", 1200)
	card := creditCardAccount(userID, "acc_card", "4321", 4000, 5000)

	// Heavy subscriptions too, so two personas match and priority decides.
	txns := []domain.Transaction{}
	txns = append(txns, repeatTxn(userID, checking.AccountID, 4, 30, 6, 15.99, "Streamflix", "entertainment")...)
	txns = append(txns, repeatTxn(userID, checking.AccountID, 7, 30, 6, 11.99, "Tunecloud", "entertainment")...)
	txns = append(txns, repeatTxn(userID, checking.AccountID, 10, 30, 6, 19.99, "IronWorks Gym", "fitness")...)

	repo := newTestRepo(consentedUser(userID, 400), []domain.Account{checking, card}, txns, nil)
	svc := newTestPersonaService(repo)

	assignment, err := svc.AssignPersonaToUser(userID)
	require.NoError(t, err)

	assert.Equal(t, domain.PersonaHighUtilization, assignment.AssignedPersona.ID)
	assert.Equal(t, 5, assignment.AssignedPersona.Priority)
	// The rationale cites the actual card and figures.
	assert.Contains(t, assignment.Rationale, "4321")
	assert.Contains(t, assignment.Rationale, "80%")

	trace := assignment.DecisionTrace
	assert.Equal(t, userID, trace.UserID)
	assert.Equal(t, domain.PersonaHighUtilization, trace.SelectedPersona)
	require.Len(t, trace.AllMatches, 2)
	matched := []string{trace.AllMatches[0].Persona.ID, trace.AllMatches[1].Persona.ID}
	assert.ElementsMatch(t, []string{domain.PersonaHighUtilization, domain.PersonaSubscriptionHeavy}, matched)
	assert.Contains(t, trace.SelectionReason, "highest priority")
}

func TestAssignPersona_SubscriptionHeavyOutranksSavingsBuilder(t *testing.T) {
	const userID = "u1"
	checking := checkingAccount(userID, "acc_chk", 2500)
	savings := savingsAccount(userID, "acc_sav", 5000)

	txns := []domain.Transaction{}
	txns = append(txns, repeatTxn(userID, checking.AccountID, 4, 30, 6, 15.99, "Streamflix", "entertainment")...)
	txns = append(txns, repeatTxn(userID, checking.AccountID, 7, 30, 6, 11.99, "Tunecloud", "entertainment")...)
	txns = append(txns, repeatTxn(userID, checking.AccountID, 10, 30, 6, 19.99, "IronWorks Gym", "fitness")...)
	txns = append(txns, repeatTxn(userID, checking.AccountID, 13, 30, 6, 14.99, "PageTurner Books", "entertainment")...)
	txns = append(txns, repeatTxn(userID, savings.AccountID, 5, 30, 6, -300, "Transfer from Checking", "transfer")...)

	repo := newTestRepo(consentedUser(userID, 400), []domain.Account{checking, savings}, txns, nil)
	svc := newTestPersonaService(repo)

	assignment, err := svc.AssignPersonaToUser(userID)
	require.NoError(t, err)

	assert.Equal(t, domain.PersonaSubscriptionHeavy, assignment.AssignedPersona.ID)
	require.Len(t, assignment.DecisionTrace.AllMatches, 2)
	// Savings Builder matched too but lost on priority.
	ids := []string{}
	for _, m := range assignment.DecisionTrace.AllMatches {
		ids = append(ids, m.Persona.ID)
	}
	assert.Contains(t, ids, domain.PersonaSavingsBuilder)
}

func TestAssignPersona_BrandNewUser(t *testing.T) {
	const userID = "u_new"
	checking := checkingAccount(userID, "acc_chk", 150)

	repo := newTestRepo(consentedUser(userID, 9), []domain.Account{checking}, nil, nil)
	svc := newTestPersonaService(repo)

	assignment, err := svc.AssignPersonaToUser(userID)
	require.NoError(t, err)

	assert.Equal(t, domain.PersonaNewUser, assignment.AssignedPersona.ID)
	require.Len(t, assignment.DecisionTrace.AllMatches, 1)
	assert.Contains(t, assignment.Rationale, "9 days old")
	assert.Equal(t, 9, assignment.BehavioralSignals.AccountAgeDays)
}

func TestAssignPersona_FallbackWhenNothingMatches(t *testing.T) {
	const userID = "u_quiet"
	checking := checkingAccount(userID, "acc_chk", 900)
	savings := savingsAccount(userID, "acc_sav", 100)
	card := creditCardAccount(userID, "acc_card", "7777", 100, 5000)

	// An old profile with three quiet accounts matches no predicate,
	// including New User's own.
	repo := newTestRepo(consentedUser(userID, 700), []domain.Account{checking, savings, card}, nil, nil)
	svc := newTestPersonaService(repo)

	assignment, err := svc.AssignPersonaToUser(userID)
	require.NoError(t, err)

	assert.Equal(t, domain.PersonaNewUser, assignment.AssignedPersona.ID)
	assert.Empty(t, assignment.DecisionTrace.AllMatches)
	assert.Contains(t, assignment.DecisionTrace.SelectionReason, "fallback")
	assert.NotEmpty(t, assignment.Rationale)
}

func TestAssignPersona_ConsentRequired(t *testing.T) {
	const userID = "u_no_consent"
	user := consentedUser(userID, 400)
	user.ConsentGranted = false

	repo := newTestRepo(user, []domain.Account{checkingAccount(userID, "acc_chk", 500)}, nil, nil)
	svc := newTestPersonaService(repo)

	_, err := svc.AssignPersonaToUser(userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrConsentNotGranted)
}

func TestAssignPersona_UnknownUser(t *testing.T) {
	repo := repository.NewUserRepositoryMemory()
	svc := newTestPersonaService(repo)

	_, err := svc.AssignPersonaToUser("ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestAssignPersona_VariableIncome(t *testing.T) {
	const userID = "u_gig"
	checking := checkingAccount(userID, "acc_chk", 700)

	txns := []domain.Transaction{
		testTxn(userID, checking.AccountID, 10, -1800, "Gig Platform Payout", "payroll"),
		testTxn(userID, checking.AccountID, 72, -1500, "Gig Platform Payout", "payroll"),
		testTxn(userID, checking.AccountID, 121, -2200, "Gig Platform Payout", "payroll"),
		testTxn(userID, checking.AccountID, 176, -1700, "Gig Platform Payout", "payroll"),
	}
	txns = append(txns, repeatTxn(userID, checking.AccountID, 9, 30, 6, 1100, "Maple Court Apartments", "rent")...)

	repo := newTestRepo(consentedUser(userID, 400), []domain.Account{checking}, txns, nil)
	svc := newTestPersonaService(repo)

	assignment, err := svc.AssignPersonaToUser(userID)
	require.NoError(t, err)

	assert.Equal(t, domain.PersonaVariableIncome, assignment.AssignedPersona.ID)
	assert.True(t, strings.Contains(assignment.Rationale, "every 55 days"), "rationale %q should cite the median gap", assignment.Rationale)
}

func TestSeededUsersLandOnIntendedPersonas(t *testing.T) {
	repo := repository.NewUserRepositoryMemory()
	repository.SeedDemoUsers(repo, testAsOf)
	svc := newTestPersonaService(repo)

	want := map[string]string{
		"user_high_util":       domain.PersonaHighUtilization,
		"user_subscriptions":   domain.PersonaSubscriptionHeavy,
		"user_variable_income": domain.PersonaVariableIncome,
		"user_saver":           domain.PersonaSavingsBuilder,
		"user_new":             domain.PersonaNewUser,
	}
	for userID, personaID := range want {
		assignment, err := svc.AssignPersonaToUser(userID)
		require.NoError(t, err, "user %s", userID)
		assert.Equal(t, personaID, assignment.AssignedPersona.ID, "user %s", userID)
		assert.NotEmpty(t, assignment.Rationale, "user %s", userID)
	}

	_, err := svc.AssignPersonaToUser("user_no_consent")
	assert.ErrorIs(t, err, repository.ErrConsentNotGranted)
}

package service

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness-engine/catalog"
	"wellness-engine/domain"
	"wellness-engine/repository"
)

func newTestRecommendationStack(t *testing.T) (*RecommendationService, *repository.ReviewQueueMemory) {
	t.Helper()
	repo := repository.NewUserRepositoryMemory()
	repository.SeedDemoUsers(repo, testAsOf)

	svc := NewRecommendationService(
		repo,
		repository.NewMemoryCache(),
		repository.NewReviewQueueMemory(),
		newTestPersonaService(repo),
		NewContentService(catalog.Defaults(), NewEligibilityService()),
		NewAIService(false, "", 0),
		5*time.Minute,
	)
	return svc, svc.reviewQueue.(*repository.ReviewQueueMemory)
}

func TestGenerateRecommendations_HighUtilizationUser(t *testing.T) {
	svc, _ := newTestRecommendationStack(t)

	set, err := svc.GenerateRecommendations("user_high_util", RecommendationOptions{})
	require.NoError(t, err)

	assert.Equal(t, domain.PersonaHighUtilization, set.Persona.ID)
	assert.NotEmpty(t, set.PersonaRationale)
	assert.Equal(t, Disclaimer, set.Disclaimer)

	require.GreaterOrEqual(t, len(set.Education), DefaultEducationMin)
	require.LessOrEqual(t, len(set.Education), DefaultEducationMax)
	for _, rec := range set.Education {
		assert.Equal(t, domain.RecommendationTypeEducation, rec.Type)
		assert.True(t, strings.HasPrefix(rec.Rationale, "Based on your"), "rationale %q", rec.Rationale)
	}

	require.LessOrEqual(t, len(set.PartnerOffers), DefaultOffersMax)
	require.NotEmpty(t, set.PartnerOffers)
	for _, rec := range set.PartnerOffers {
		assert.Equal(t, domain.RecommendationTypeOffer, rec.Type)
		assert.NotEmpty(t, rec.Rationale)
		require.NotNil(t, rec.EligibilityCheck)
		assert.True(t, rec.EligibilityCheck.IsEligible)
	}
	// The secured starter card scores for this persona but is excluded
	// because the user already holds a credit card.
	assert.Equal(t, 1, set.Summary.OffersFilteredOut)

	assert.Equal(t, set.Summary.EducationCount, len(set.Education))
	assert.Equal(t, set.Summary.PartnerOfferCount, len(set.PartnerOffers))

	assert.Equal(t, EstimatedScoreHighUtil, set.FinancialSummary.EstimatedCreditScore)
	assert.InDelta(t, 0.8, set.FinancialSummary.MaxUtilization, 0.001)
	assert.InDelta(t, 33600, set.FinancialSummary.EstimatedAnnualIncome, 1.0)

	assert.Equal(t, "user_high_util", set.DecisionTrace.UserID)
	assert.Equal(t, domain.PersonaHighUtilization, set.DecisionTrace.SelectedPersona)
	assert.NotEmpty(t, set.DecisionTrace.TraceID)
}

func TestGenerateRecommendations_NoProhibitedOffersEver(t *testing.T) {
	svc, _ := newTestRecommendationStack(t)

	for _, userID := range []string{"user_high_util", "user_subscriptions", "user_variable_income", "user_saver", "user_new"} {
		set, err := svc.GenerateRecommendations(userID, RecommendationOptions{})
		require.NoError(t, err, "user %s", userID)
		for _, rec := range set.PartnerOffers {
			for _, keyword := range []string{"payday", "title loan", "pawn", "cash advance"} {
				assert.NotContains(t, strings.ToLower(rec.Item.OfferCategory), keyword)
				assert.NotContains(t, strings.ToLower(rec.Item.Title), keyword)
			}
		}
	}
}

func TestGenerateRecommendations_CacheHitIsByteIdentical(t *testing.T) {
	svc, _ := newTestRecommendationStack(t)

	// Advance the persona clock per assignment so a recomputation would
	// mint a different trace id; a matching payload proves the cache hit.
	current := testAsOf
	svc.personas.now = func() time.Time {
		current = current.Add(time.Second)
		return current
	}

	first, err := svc.GenerateRecommendations("user_saver", RecommendationOptions{})
	require.NoError(t, err)
	second, err := svc.GenerateRecommendations("user_saver", RecommendationOptions{})
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
	assert.Equal(t, first.DecisionTrace.TraceID, second.DecisionTrace.TraceID)

	refreshed, err := svc.GenerateRecommendations("user_saver", RecommendationOptions{ForceRefresh: true})
	require.NoError(t, err)
	assert.NotEqual(t, first.DecisionTrace.TraceID, refreshed.DecisionTrace.TraceID)
}

func TestGenerateRecommendations_EnqueuesDecisionTrace(t *testing.T) {
	svc, queue := newTestRecommendationStack(t)

	set, err := svc.GenerateRecommendations("user_subscriptions", RecommendationOptions{})
	require.NoError(t, err)

	traces, err := queue.List()
	require.NoError(t, err)
	require.Len(t, traces, 1)
	assert.Equal(t, set.DecisionTrace.TraceID, traces[0].TraceID)
	assert.Equal(t, "user_subscriptions", traces[0].UserID)
}

func TestGenerateRecommendations_ConsentAndUnknownUserErrors(t *testing.T) {
	svc, _ := newTestRecommendationStack(t)

	_, err := svc.GenerateRecommendations("user_no_consent", RecommendationOptions{})
	assert.ErrorIs(t, err, repository.ErrConsentNotGranted)

	_, err = svc.GenerateRecommendations("ghost", RecommendationOptions{})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestGenerateRecommendations_BoundsOverride(t *testing.T) {
	svc, _ := newTestRecommendationStack(t)

	set, err := svc.GenerateRecommendations("user_new", RecommendationOptions{
		EducationMin: 1, EducationMax: 2, OffersMax: 1,
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(set.Education), 2)
	assert.LessOrEqual(t, len(set.PartnerOffers), 1)
}

func TestNormalizeOptions(t *testing.T) {
	svc, _ := newTestRecommendationStack(t)

	opts := svc.normalize(RecommendationOptions{})
	assert.Equal(t, DefaultEducationMin, opts.EducationMin)
	assert.Equal(t, DefaultEducationMax, opts.EducationMax)
	assert.Equal(t, DefaultOffersMax, opts.OffersMax)

	// A max below the min is lifted to the min.
	opts = svc.normalize(RecommendationOptions{EducationMin: 4, EducationMax: 2})
	assert.Equal(t, 4, opts.EducationMax)
}

func TestEstimateFinancialSummary(t *testing.T) {
	t.Run("no signals keeps the base score", func(t *testing.T) {
		summary := estimateFinancialSummary(domain.BehavioralSignals{})
		assert.Equal(t, EstimatedScoreBase, summary.EstimatedCreditScore)
		assert.Zero(t, summary.EstimatedAnnualIncome)
	})

	t.Run("overdue accounts score lowest", func(t *testing.T) {
		summary := estimateFinancialSummary(domain.BehavioralSignals{
			Credit: domain.CreditSignals{
				ShortTerm: &domain.CreditMetrics{HasOverdue: true, MeetsThreshold: true, MaxUtilization: 0.9},
			},
		})
		assert.Equal(t, EstimatedScoreDistressed, summary.EstimatedCreditScore)
		assert.True(t, summary.HasOverdueAccounts)
	})

	t.Run("high utilization without overdue", func(t *testing.T) {
		summary := estimateFinancialSummary(domain.BehavioralSignals{
			Credit: domain.CreditSignals{
				ShortTerm: &domain.CreditMetrics{MeetsThreshold: true, MaxUtilization: 0.8},
			},
		})
		assert.Equal(t, EstimatedScoreHighUtil, summary.EstimatedCreditScore)
	})

	t.Run("growing savings with low utilization scores highest", func(t *testing.T) {
		summary := estimateFinancialSummary(domain.BehavioralSignals{
			Credit: domain.CreditSignals{
				ShortTerm: &domain.CreditMetrics{
					MaxUtilization: 0.06,
					Cards:          []domain.CardUtilization{{Tier: domain.UtilizationLow, Utilization: 0.06}},
				},
			},
			Savings: domain.SavingsSignals{
				LongTerm: &domain.SavingsMetrics{GrowthRate: 0.4, MonthlyNetInflow: 400},
			},
		})
		assert.Equal(t, EstimatedScoreHealthy, summary.EstimatedCreditScore)
	})

	t.Run("income annualized from the long window", func(t *testing.T) {
		summary := estimateFinancialSummary(domain.BehavioralSignals{
			Income: domain.IncomeSignals{
				LongTerm: &domain.IncomeMetrics{
					Window:               domain.WindowLongTerm,
					PayrollDepositCount:  12,
					AverageDepositAmount: 2100,
				},
			},
		})
		// 12 deposits of $2,100 over 6 months: $4,200/month.
		assert.InDelta(t, 50400, summary.EstimatedAnnualIncome, 0.01)
	})
}

package service

import (
	"encoding/json"
	"fmt"
	"time"

	"wellness-engine/domain"
	"wellness-engine/logger"
	"wellness-engine/repository"
)

// RecommendationOptions tune one generation call. Zero values fall back to
// the service defaults.
type RecommendationOptions struct {
	ForceRefresh bool `json:"force_refresh"`
	EducationMin int  `json:"education_min"`
	EducationMax int  `json:"education_max"`
	OffersMax    int  `json:"offers_max"`
}

// RecommendationService is the orchestrator: consent, signals, persona,
// selection, guardrails, rationales, cache, and the review-queue handoff.
type RecommendationService struct {
	repo        repository.UserRepository
	cache       repository.CacheRepository
	reviewQueue repository.ReviewQueueRepository
	personas    *PersonaService
	content     *ContentService
	rationales  *RationaleService
	tone        *ToneService
	ai          *AIService
	cacheTTL    time.Duration
	defaults    RecommendationOptions
}

func NewRecommendationService(
	repo repository.UserRepository,
	cache repository.CacheRepository,
	reviewQueue repository.ReviewQueueRepository,
	personas *PersonaService,
	content *ContentService,
	ai *AIService,
	cacheTTL time.Duration,
) *RecommendationService {
	return &RecommendationService{
		repo:        repo,
		cache:       cache,
		reviewQueue: reviewQueue,
		personas:    personas,
		content:     content,
		rationales:  NewRationaleService(),
		tone:        NewToneService(),
		ai:          ai,
		cacheTTL:    cacheTTL,
		defaults: RecommendationOptions{
			EducationMin: DefaultEducationMin,
			EducationMax: DefaultEducationMax,
			OffersMax:    DefaultOffersMax,
		},
	}
}

// SetDefaultBounds overrides the built-in selection bounds (from config).
func (s *RecommendationService) SetDefaultBounds(educationMin, educationMax, offersMax int) {
	if educationMin > 0 {
		s.defaults.EducationMin = educationMin
	}
	if educationMax > 0 {
		s.defaults.EducationMax = educationMax
	}
	if offersMax > 0 {
		s.defaults.OffersMax = offersMax
	}
}

// AssignPersonaToUser assigns a persona and hands the decision trace to the
// review queue. Enqueue failures are logged, never surfaced.
func (s *RecommendationService) AssignPersonaToUser(userID string) (domain.PersonaAssignment, error) {
	assignment, err := s.personas.AssignPersonaToUser(userID)
	if err != nil {
		return domain.PersonaAssignment{}, err
	}
	if err := s.reviewQueue.Enqueue(assignment.DecisionTrace); err != nil {
		logger.Warn().Err(err).Str("user_id", userID).Msg("failed to enqueue decision trace")
	}
	return assignment, nil
}

// GenerateRecommendations produces the full recommendation payload. Within
// the cache TTL, repeat calls with ForceRefresh=false return the cached
// payload byte for byte.
func (s *RecommendationService) GenerateRecommendations(userID string, opts RecommendationOptions) (domain.RecommendationSet, error) {
	opts = s.normalize(opts)
	cacheKey := fmt.Sprintf("recommendations:%s:edu%d-%d:offers%d",
		userID, opts.EducationMin, opts.EducationMax, opts.OffersMax)

	if opts.ForceRefresh {
		if err := s.cache.DeleteByPrefix("recommendations:" + userID + ":"); err != nil {
			logger.Warn().Err(err).Str("user_id", userID).Msg("cache invalidation failed")
		}
	} else if cached, ok := s.cache.Get(cacheKey); ok {
		var set domain.RecommendationSet
		if err := json.Unmarshal([]byte(cached), &set); err == nil {
			return set, nil
		}
		logger.Warn().Str("user_id", userID).Msg("discarding malformed cache entry")
	}

	assignment, err := s.AssignPersonaToUser(userID)
	if err != nil {
		return domain.RecommendationSet{}, err
	}
	accounts, err := s.repo.GetAccounts(userID)
	if err != nil {
		return domain.RecommendationSet{}, err
	}

	summary := estimateFinancialSummary(assignment.BehavioralSignals)
	persona := assignment.AssignedPersona

	education := []domain.Recommendation{}
	for _, item := range s.content.SelectEducationForPersona(persona, domain.SelectionOptions{
		MinItems: opts.EducationMin,
		MaxItems: opts.EducationMax,
	}) {
		education = append(education, domain.Recommendation{
			Type:      domain.RecommendationTypeEducation,
			Item:      item,
			Rationale: s.rationales.GenerateRationale(item, persona, assignment.BehavioralSignals),
		})
	}

	offers := []domain.Recommendation{}
	selectedOffers, filteredOut := s.content.SelectOffersForPersona(persona, opts.OffersMax, summary, accounts)
	for _, offer := range selectedOffers {
		check := offer.Eligibility
		offers = append(offers, domain.Recommendation{
			Type:             domain.RecommendationTypeOffer,
			Item:             offer.Item,
			Rationale:        s.rationales.GenerateRationale(offer.Item, persona, assignment.BehavioralSignals),
			EligibilityCheck: &check,
		})
	}

	set := domain.RecommendationSet{
		UserID:           userID,
		Persona:          persona,
		PersonaRationale: s.augmentedRationale(persona, assignment.Rationale),
		Education:        education,
		PartnerOffers:    offers,
		Summary: domain.SelectionSummary{
			EducationCount:    len(education),
			PartnerOfferCount: len(offers),
			OffersFilteredOut: filteredOut,
		},
		FinancialSummary: summary,
		DecisionTrace:    assignment.DecisionTrace,
		Disclaimer:       Disclaimer,
	}

	if payload, err := json.Marshal(set); err == nil {
		if err := s.cache.Set(cacheKey, string(payload), s.cacheTTL); err != nil {
			logger.Warn().Err(err).Str("user_id", userID).Msg("cache write failed")
		}
	}
	return set, nil
}

func (s *RecommendationService) normalize(opts RecommendationOptions) RecommendationOptions {
	if opts.EducationMin <= 0 {
		opts.EducationMin = s.defaults.EducationMin
	}
	if opts.EducationMax <= 0 {
		opts.EducationMax = s.defaults.EducationMax
	}
	if opts.EducationMax < opts.EducationMin {
		opts.EducationMax = opts.EducationMin
	}
	if opts.OffersMax <= 0 {
		opts.OffersMax = s.defaults.OffersMax
	}
	return opts
}

// augmentedRationale attempts the optional AI rewrite of the persona
// rationale. Any failure, and any tone violation in the generated text,
// degrades silently to the template rationale.
func (s *RecommendationService) augmentedRationale(persona domain.Persona, template string) string {
	if s.ai == nil || !s.ai.Enabled() {
		return template
	}
	augmented, err := s.ai.AugmentPersonaRationale(persona, template)
	if err != nil {
		logger.Warn().Err(err).Str("persona", persona.ID).Msg("ai augmentation failed, keeping template rationale")
		return template
	}
	if validation := s.tone.ValidateContent(ToneContent{Rationale: augmented}); !validation.IsValid {
		logger.Warn().
			Str("persona", persona.ID).
			Int("violations", len(validation.Violations)).
			Msg("ai rationale failed tone validation, keeping template rationale")
		return template
	}
	return augmented
}

// estimateFinancialSummary derives the eligibility context from behavioral
// signals. These are estimates by design: the demo has no bureau feed, and
// downstream checks document them as such.
func estimateFinancialSummary(signals domain.BehavioralSignals) domain.FinancialSummary {
	summary := domain.FinancialSummary{
		EstimatedCreditScore: EstimatedScoreBase,
	}

	if income := freshest(signals.Income.LongTerm, signals.Income.ShortTerm); income != nil {
		days := windowDays(income.Window)
		monthly := float64(income.PayrollDepositCount) * income.AverageDepositAmount / monthsIn(days)
		summary.EstimatedAnnualIncome = roundTo2Decimals(monthly * 12)
	}

	credit := freshest(signals.Credit.ShortTerm, signals.Credit.LongTerm)
	if credit != nil {
		summary.MaxUtilization = credit.MaxUtilization
		summary.HasOverdueAccounts = credit.HasOverdue
		switch {
		case credit.HasOverdue:
			summary.EstimatedCreditScore = EstimatedScoreDistressed
		case credit.MeetsThreshold || credit.HasInterestCharges:
			summary.EstimatedCreditScore = EstimatedScoreHighUtil
		}
	}

	if summary.EstimatedCreditScore == EstimatedScoreBase &&
		allCardsLowUtilization(signals.Credit) &&
		eitherSavingsWindow(signals.Savings, savingsGrowing) != nil {
		summary.EstimatedCreditScore = EstimatedScoreHealthy
	}
	return summary
}

func windowDays(w domain.Window) int {
	if w == domain.WindowShortTerm {
		return domain.WindowShortTermDays
	}
	return domain.WindowLongTermDays
}

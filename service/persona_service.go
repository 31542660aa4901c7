package service

import (
	"fmt"
	"time"

	"wellness-engine/domain"
	"wellness-engine/logger"
	"wellness-engine/repository"
)

// PersonaService runs the extractors and assigns exactly one persona per
// call. Evaluation is never short-circuited: every predicate runs so the
// decision trace carries the complete match set.
type PersonaService struct {
	repo          repository.UserRepository
	subscriptions *SubscriptionService
	savings       *SavingsService
	credit        *CreditService
	income        *IncomeService
	personas      []PersonaDefinition
	now           func() time.Time
}

func NewPersonaService(repo repository.UserRepository) *PersonaService {
	return &PersonaService{
		repo:          repo,
		subscriptions: NewSubscriptionService(repo),
		savings:       NewSavingsService(repo),
		credit:        NewCreditService(repo),
		income:        NewIncomeService(repo),
		personas:      PersonaCatalog(),
		now:           time.Now,
	}
}

// AssignPersonaToUser verifies consent, extracts behavioral signals, and
// selects the highest-priority matching persona. When nothing matches it
// falls back to New User regardless of that persona's own predicate.
func (s *PersonaService) AssignPersonaToUser(userID string) (domain.PersonaAssignment, error) {
	if err := s.repo.VerifyConsent(userID); err != nil {
		return domain.PersonaAssignment{}, err
	}

	signals, err := s.ExtractSignals(userID)
	if err != nil {
		return domain.PersonaAssignment{}, err
	}

	matches := s.evaluateAll(signals)
	winner, rationale, reason := s.prioritize(matches, signals)

	asOf := s.now()
	trace := domain.DecisionTrace{
		TraceID:         fmt.Sprintf("trace_%s_%d", userID, asOf.UnixNano()),
		UserID:          userID,
		Timestamp:       asOf,
		AllMatches:      matches,
		SelectedPersona: winner.ID,
		SelectionReason: reason,
	}

	return domain.PersonaAssignment{
		UserID:            userID,
		AssignedPersona:   winner,
		Rationale:         rationale,
		DecisionTrace:     trace,
		BehavioralSignals: signals,
	}, nil
}

// ExtractSignals runs all four extractors plus the profile-level counts the
// New User predicate needs. Storage errors propagate unchanged.
func (s *PersonaService) ExtractSignals(userID string) (domain.BehavioralSignals, error) {
	user, err := s.repo.GetUser(userID)
	if err != nil {
		return domain.BehavioralSignals{}, err
	}
	accounts, err := s.repo.GetAccounts(userID)
	if err != nil {
		return domain.BehavioralSignals{}, err
	}

	subscriptions, err := s.subscriptions.AnalyzeSubscriptionsForUser(userID)
	if err != nil {
		return domain.BehavioralSignals{}, err
	}
	savings, err := s.savings.AnalyzeSavingsForUser(userID)
	if err != nil {
		return domain.BehavioralSignals{}, err
	}
	credit, err := s.credit.AnalyzeCreditForUser(userID)
	if err != nil {
		return domain.BehavioralSignals{}, err
	}
	income, err := s.income.AnalyzeIncomeForUser(userID)
	if err != nil {
		return domain.BehavioralSignals{}, err
	}

	cardCount := 0
	allLimitsUnder := true
	for _, a := range accounts {
		if a.IsCreditCard() {
			cardCount++
			if a.CreditLimit >= NewUserMaxCreditLimit {
				allLimitsUnder = false
			}
		}
	}

	ageDays := int(s.now().Sub(user.CreatedAt).Hours() / 24)
	if ageDays < 0 {
		ageDays = 0
	}

	return domain.BehavioralSignals{
		Subscriptions:   subscriptions,
		Savings:         savings,
		Credit:          credit,
		Income:          income,
		AccountAgeDays:  ageDays,
		TotalAccounts:   len(accounts),
		CreditCardCount: cardCount,
		AllLimitsUnder:  allLimitsUnder,
	}, nil
}

func (s *PersonaService) evaluateAll(signals domain.BehavioralSignals) []domain.MatchResult {
	matches := []domain.MatchResult{}
	for _, def := range s.personas {
		if !def.Matches(signals) {
			continue
		}
		matches = append(matches, domain.MatchResult{
			Persona:   def.Persona,
			Rationale: def.Rationale(signals),
		})
	}
	return matches
}

// prioritize picks the match with the highest static priority. Priorities
// are unique, so there is no tie to break.
func (s *PersonaService) prioritize(matches []domain.MatchResult, signals domain.BehavioralSignals) (domain.Persona, string, string) {
	if len(matches) == 0 {
		fallback := FallbackPersona()
		logger.Debug().Msg("no persona predicate matched, falling back to new_user")
		return fallback.Persona, fallback.Rationale(signals),
			"no persona predicate matched; assigned the New User fallback"
	}

	best := matches[0]
	for _, m := range matches[1:] {
		if m.Persona.Priority > best.Persona.Priority {
			best = m
		}
	}
	reason := fmt.Sprintf("highest priority (%d) among %d matching persona(s)",
		best.Persona.Priority, len(matches))
	return best.Persona, best.Rationale, reason
}

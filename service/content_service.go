package service

import (
	"sort"

	"wellness-engine/catalog"
	"wellness-engine/domain"
)

// ContentService scores and ranks catalog entries against an assigned
// persona. The catalog is read-only configuration; selection never
// mutates it.
type ContentService struct {
	catalog     *catalog.Catalog
	eligibility *EligibilityService
}

func NewContentService(cat *catalog.Catalog, eligibility *EligibilityService) *ContentService {
	return &ContentService{catalog: cat, eligibility: eligibility}
}

type scoredItem struct {
	item  domain.CatalogItem
	score int
	index int // catalog order, the tie-breaker
}

// scoreItem implements the fixed scoring rule: +10 for persona fit, +5 per
// overlapping recommendation type.
func scoreItem(item domain.CatalogItem, persona domain.Persona) int {
	score := 0
	for _, fit := range item.PersonaFit {
		if fit == persona.ID {
			score += PersonaFitScore
			break
		}
	}
	personaTypes := map[string]bool{}
	for _, t := range persona.RecommendationTypes {
		personaTypes[t] = true
	}
	for _, t := range item.RecommendationTypes {
		if personaTypes[t] {
			score += TypeOverlapScore
		}
	}
	return score
}

func rankItems(items []domain.CatalogItem, persona domain.Persona) []scoredItem {
	scored := make([]scoredItem, 0, len(items))
	for i, item := range items {
		scored = append(scored, scoredItem{item: item, score: scoreItem(item, persona), index: i})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].index < scored[j].index
	})
	return scored
}

// SelectEducationForPersona returns between opts.MinItems and opts.MaxItems
// education items. Positive-scoring items come first; when fewer than
// MinItems score positive, the persona-fit subset backfills in catalog
// order until the minimum is met or the catalog runs out.
func (s *ContentService) SelectEducationForPersona(persona domain.Persona, opts domain.SelectionOptions) []domain.CatalogItem {
	ranked := rankItems(s.catalog.Education(), persona)

	selected := []domain.CatalogItem{}
	for _, candidate := range ranked {
		if candidate.score <= 0 || len(selected) >= opts.MaxItems {
			break
		}
		selected = append(selected, candidate.item)
	}

	if len(selected) < opts.MinItems {
		selected = backfill(selected, ranked, opts.MinItems, persona)
	}
	return selected
}

// backfill tops the selection up from the persona-fit subset, keeping
// catalog order among equal scores.
func backfill(selected []domain.CatalogItem, ranked []scoredItem, minItems int, persona domain.Persona) []domain.CatalogItem {
	chosen := map[string]bool{}
	for _, item := range selected {
		chosen[item.ID] = true
	}
	for _, candidate := range ranked {
		if len(selected) >= minItems {
			break
		}
		if chosen[candidate.item.ID] || !fitsPersona(candidate.item, persona) {
			continue
		}
		selected = append(selected, candidate.item)
		chosen[candidate.item.ID] = true
	}
	return selected
}

func fitsPersona(item domain.CatalogItem, persona domain.Persona) bool {
	for _, fit := range item.PersonaFit {
		if fit == persona.ID {
			return true
		}
	}
	return false
}

// SelectedOffer pairs an eligible offer with its recorded eligibility pass.
type SelectedOffer struct {
	Item        domain.CatalogItem
	Eligibility domain.EligibilityResult
}

// SelectOffersForPersona ranks partner offers the same way as education
// items, but every offer must pass the eligibility filter before it counts
// toward the maximum. Ineligible high scorers are skipped, never padded in.
// The second return value counts offers filtered out by eligibility.
func (s *ContentService) SelectOffersForPersona(
	persona domain.Persona,
	maxItems int,
	summary domain.FinancialSummary,
	accounts []domain.Account,
) ([]SelectedOffer, int) {
	ranked := rankItems(s.catalog.PartnerOffers(), persona)

	selected := []SelectedOffer{}
	filteredOut := 0
	for _, candidate := range ranked {
		if candidate.score <= 0 || len(selected) >= maxItems {
			break
		}
		check := s.eligibility.CheckEligibility(candidate.item, summary, accounts)
		if !check.IsEligible {
			filteredOut++
			continue
		}
		selected = append(selected, SelectedOffer{Item: candidate.item, Eligibility: check})
	}
	return selected, filteredOut
}

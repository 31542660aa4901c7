package service

import (
	"fmt"
	"strings"

	"wellness-engine/domain"
)

// prohibitedProductKeywords is the hard blocklist. An offer matching any of
// these is ineligible no matter what its other criteria say.
var prohibitedProductKeywords = []string{
	"payday",
	"title loan",
	"auto title",
	"pawn",
	"cash advance",
	"rent-to-own",
	"rent to own",
	"check cashing",
	"refund anticipation",
	"crypto margin",
}

// EligibilityService gates partner offers. Income and credit score inputs
// are behavioral estimates, not bureau data; thresholds here are guardrails,
// not underwriting.
type EligibilityService struct{}

func NewEligibilityService() *EligibilityService {
	return &EligibilityService{}
}

// CheckEligibility runs the prohibited-product check first and
// short-circuits on a hit, then applies each soft criterion the offer
// specifies. A nil threshold means the criterion is not required.
func (s *EligibilityService) CheckEligibility(
	offer domain.CatalogItem,
	summary domain.FinancialSummary,
	accounts []domain.Account,
) domain.EligibilityResult {
	result := domain.EligibilityResult{
		Reasons:       []string{},
		Disqualifiers: []string{},
	}

	if keyword, hit := matchProhibitedProduct(offer); hit {
		result.Disqualifiers = append(result.Disqualifiers,
			fmt.Sprintf("prohibited product category (matched %q)", keyword))
		return result
	}

	rules := offer.Eligibility
	if rules == nil {
		result.IsEligible = true
		result.Reasons = append(result.Reasons, "offer specifies no eligibility criteria")
		return result
	}

	if rules.MinAnnualIncome != nil {
		if summary.EstimatedAnnualIncome >= *rules.MinAnnualIncome {
			result.Reasons = append(result.Reasons,
				fmt.Sprintf("estimated annual income $%.0f meets the $%.0f minimum", summary.EstimatedAnnualIncome, *rules.MinAnnualIncome))
		} else {
			result.Disqualifiers = append(result.Disqualifiers,
				fmt.Sprintf("estimated annual income $%.0f is below the $%.0f minimum", summary.EstimatedAnnualIncome, *rules.MinAnnualIncome))
		}
	}

	if rules.MinCreditScore != nil {
		if summary.EstimatedCreditScore >= *rules.MinCreditScore {
			result.Reasons = append(result.Reasons,
				fmt.Sprintf("estimated credit score %d meets the %d minimum", summary.EstimatedCreditScore, *rules.MinCreditScore))
		} else {
			result.Disqualifiers = append(result.Disqualifiers,
				fmt.Sprintf("estimated credit score %d is below the %d minimum", summary.EstimatedCreditScore, *rules.MinCreditScore))
		}
	}

	if rules.MaxUtilization != nil {
		if summary.MaxUtilization <= *rules.MaxUtilization {
			result.Reasons = append(result.Reasons,
				fmt.Sprintf("utilization %.0f%% is within the %.0f%% maximum", summary.MaxUtilization*100, *rules.MaxUtilization*100))
		} else {
			result.Disqualifiers = append(result.Disqualifiers,
				fmt.Sprintf("utilization %.0f%% exceeds the %.0f%% maximum", summary.MaxUtilization*100, *rules.MaxUtilization*100))
		}
	}

	for _, excluded := range rules.ExcludedAccountTypes {
		if account, hit := matchExcludedAccountType(excluded, accounts); hit {
			result.Disqualifiers = append(result.Disqualifiers,
				fmt.Sprintf("user already holds a %s account (%s), excluded by the offer", account.Subtype, account.Name))
		}
	}

	result.IsEligible = len(result.Disqualifiers) == 0
	return result
}

// matchProhibitedProduct scans the offer's category, title, and description
// against the blocklist. Underscores are normalized so "payday_loan"
// matches "payday".
func matchProhibitedProduct(offer domain.CatalogItem) (string, bool) {
	haystack := normalizeKeyword(offer.OfferCategory + " " + offer.Title + " " + offer.Description)
	for _, keyword := range prohibitedProductKeywords {
		if strings.Contains(haystack, keyword) {
			return keyword, true
		}
	}
	return "", false
}

// matchExcludedAccountType compares the excluded entry against each account
// type/subtype using base-keyword substring matching, so "savings_account"
// excludes both "savings" and "savings_account" subtypes.
func matchExcludedAccountType(excluded string, accounts []domain.Account) (domain.Account, bool) {
	base := strings.TrimSuffix(normalizeKeyword(excluded), " account")
	if base == "" {
		return domain.Account{}, false
	}
	for _, account := range accounts {
		if keywordOverlaps(normalizeKeyword(account.Subtype), base) ||
			keywordOverlaps(normalizeKeyword(account.Type), base) {
			return account, true
		}
	}
	return domain.Account{}, false
}

func keywordOverlaps(accountStr, base string) bool {
	if accountStr == "" {
		return false
	}
	return strings.Contains(accountStr, base) || strings.Contains(base, accountStr)
}

func normalizeKeyword(s string) string {
	return strings.TrimSpace(strings.ToLower(strings.ReplaceAll(s, "_", " ")))
}

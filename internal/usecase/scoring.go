package usecase

import (
	"strings"

	"github.com/acsolutions-lk/energy-leads-api/internal/entity"
)

// Free consumer webmail providers. Matched as substrings of the whole
// address, mirroring the calculator's original behavior, so a corporate
// domain that happens to contain one of these still scores as webmail.
var webmailProviders = []string{"gmail", "yahoo", "hotmail"}

// CalculateLeadScore folds office size, AC fleet, monthly bill and email
// provenance into a 0-100 qualification score. Pure: same submission,
// same score.
func CalculateLeadScore(input CreateLeadInput) int {
	score := 0

	switch size := input.Company.OfficeSize; {
	case size > 10000:
		score += 30
	case size > 5000:
		score += 20
	case size > 2000:
		score += 10
	}

	switch units := input.Company.ACUnits; {
	case units >= 20:
		score += 25
	case units >= 10:
		score += 20
	case units >= 5:
		score += 15
	default:
		score += 10
	}

	switch bill := input.Consumption.MonthlyBill; {
	case bill >= 200000:
		score += 25
	case bill >= 100000:
		score += 20
	case bill >= 50000:
		score += 15
	default:
		score += 10
	}

	if isWebmailAddress(input.Contact.Email) {
		score += 5
	} else {
		score += 20
	}

	if score > 100 {
		score = 100
	}
	return score
}

// LeadPriority maps a score to its triage bucket.
func LeadPriority(score int) string {
	switch {
	case score >= 80:
		return entity.PriorityHigh
	case score >= 60:
		return entity.PriorityMedium
	default:
		return entity.PriorityLow
	}
}

func isWebmailAddress(email string) bool {
	lower := strings.ToLower(email)
	for _, provider := range webmailProviders {
		if strings.Contains(lower, provider) {
			return true
		}
	}
	return false
}

package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acsolutions-lk/energy-leads-api/internal/entity"
)

func scoringInput(officeSize float64, acUnits int, monthlyBill float64, email string) CreateLeadInput {
	return CreateLeadInput{
		Company: CompanyInput{
			Name:          "Acme Corp",
			OfficeSize:    officeSize,
			ACUnits:       acUnits,
			CurrentACType: entity.ACTypeNonInverter,
		},
		Consumption: ConsumptionInput{
			MonthlyBill:    monthlyBill,
			OperatingHours: 10,
			CurrentUsage:   5000,
			ProjectedUsage: 3000,
		},
		Contact: ContactInput{
			Email: email,
			Phone: "+94 77 123 4567",
		},
	}
}

func TestCalculateLeadScoreMaximum(t *testing.T) {
	// 30 (office) + 25 (units) + 25 (bill) + 20 (corporate email) = 100
	score := CalculateLeadScore(scoringInput(12000, 25, 250000, "ceo@acmecorp.com"))

	assert.Equal(t, 100, score)
	assert.Equal(t, entity.PriorityHigh, LeadPriority(score))
}

func TestCalculateLeadScoreMinimalLead(t *testing.T) {
	// 0 (office) + 10 (units) + 10 (bill) + 5 (webmail) = 25
	score := CalculateLeadScore(scoringInput(1000, 2, 20000, "user@gmail.com"))

	assert.Equal(t, 25, score)
	assert.Equal(t, entity.PriorityLow, LeadPriority(score))
}

func TestCalculateLeadScoreTierBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		input    CreateLeadInput
		score    int
		priority string
	}{
		{
			name:     "exactly 80 is HIGH",
			input:    scoringInput(12000, 25, 100000, "user@yahoo.com"), // 30+25+20+5
			score:    80,
			priority: entity.PriorityHigh,
		},
		{
			name:     "75 is MEDIUM",
			input:    scoringInput(12000, 25, 60000, "user@hotmail.com"), // 30+25+15+5
			score:    75,
			priority: entity.PriorityMedium,
		},
		{
			name:     "exactly 60 is MEDIUM",
			input:    scoringInput(6000, 5, 100000, "user@gmail.com"), // 20+15+20+5
			score:    60,
			priority: entity.PriorityMedium,
		},
		{
			name:     "50 is LOW",
			input:    scoringInput(2500, 5, 100000, "user@gmail.com"), // 10+15+20+5
			score:    50,
			priority: entity.PriorityLow,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score := CalculateLeadScore(tc.input)
			assert.Equal(t, tc.score, score)
			assert.Equal(t, tc.priority, LeadPriority(score))
		})
	}
}

func TestCalculateLeadScoreIsPure(t *testing.T) {
	input := scoringInput(7500, 12, 150000, "facilities@megacorp.lk")

	first := CalculateLeadScore(input)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CalculateLeadScore(input))
	}
}

func TestCalculateLeadScoreBounds(t *testing.T) {
	inputs := []CreateLeadInput{
		scoringInput(0, 0, 0, ""),
		scoringInput(1, 1, 1, "a@b.c"),
		scoringInput(1e9, 1000, 1e9, "ceo@enterprise.com"),
	}

	for _, input := range inputs {
		score := CalculateLeadScore(input)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

// The webmail check matches substrings of the whole address, so a corporate
// domain containing a provider name is still classified as webmail.
func TestCalculateLeadScoreWebmailSubstringMatch(t *testing.T) {
	webmail := CalculateLeadScore(scoringInput(1000, 2, 20000, "user@gmail.com.evil-corp.com"))
	corporate := CalculateLeadScore(scoringInput(1000, 2, 20000, "user@evil-corp.com"))

	assert.Equal(t, 25, webmail)
	assert.Equal(t, 40, corporate)
}

func TestLeadPriority(t *testing.T) {
	assert.Equal(t, entity.PriorityHigh, LeadPriority(100))
	assert.Equal(t, entity.PriorityHigh, LeadPriority(80))
	assert.Equal(t, entity.PriorityMedium, LeadPriority(79))
	assert.Equal(t, entity.PriorityMedium, LeadPriority(60))
	assert.Equal(t, entity.PriorityLow, LeadPriority(59))
	assert.Equal(t, entity.PriorityLow, LeadPriority(0))
}

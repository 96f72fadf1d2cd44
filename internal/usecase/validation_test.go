package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acsolutions-lk/energy-leads-api/internal/entity"
)

func validInput() CreateLeadInput {
	return CreateLeadInput{
		Company: CompanyInput{
			Name:          "Acme Corp",
			OfficeSize:    8000,
			ACUnits:       12,
			CurrentACType: entity.ACTypeNonInverter,
		},
		Consumption: ConsumptionInput{
			MonthlyBill:    150000,
			OperatingHours: 10,
			CurrentUsage:   6000,
			ProjectedUsage: 4200,
		},
		ProjectedSavings: SavingsInput{
			Monthly:           45000,
			Yearly:            540000,
			FiveYear:          2700000,
			SavingsPercentage: 30,
			CO2Reduction:      12000,
		},
		Contact: ContactInput{
			Email: "facilities@acmecorp.com",
			Phone: "+94 77 123 4567",
		},
	}
}

func TestValidateCreateLeadInputValid(t *testing.T) {
	assert.Empty(t, ValidateCreateLeadInput(validInput()))
}

func TestValidateCreateLeadInputRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateLeadInput)
		field  string
	}{
		{"missing company name", func(in *CreateLeadInput) { in.Company.Name = "" }, "company.name"},
		{"zero office size", func(in *CreateLeadInput) { in.Company.OfficeSize = 0 }, "company.officeSize"},
		{"zero ac units", func(in *CreateLeadInput) { in.Company.ACUnits = 0 }, "company.acUnits"},
		{"invalid ac type", func(in *CreateLeadInput) { in.Company.CurrentACType = "window-unit" }, "company.currentACType"},
		{"zero monthly bill", func(in *CreateLeadInput) { in.Consumption.MonthlyBill = 0 }, "consumption.monthlyBill"},
		{"zero operating hours", func(in *CreateLeadInput) { in.Consumption.OperatingHours = 0 }, "consumption.operatingHours"},
		{"negative current usage", func(in *CreateLeadInput) { in.Consumption.CurrentUsage = -1 }, "consumption.currentUsage"},
		{"negative savings", func(in *CreateLeadInput) { in.ProjectedSavings.Monthly = -100 }, "projectedSavings.monthly"},
		{"percentage above 100", func(in *CreateLeadInput) { in.ProjectedSavings.SavingsPercentage = 120 }, "projectedSavings.savingsPercentage"},
		{"missing email", func(in *CreateLeadInput) { in.Contact.Email = "" }, "contact.email"},
		{"malformed email", func(in *CreateLeadInput) { in.Contact.Email = "not-an-email" }, "contact.email"},
		{"missing phone", func(in *CreateLeadInput) { in.Contact.Phone = "  " }, "contact.phone"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)

			errs := ValidateCreateLeadInput(input)
			assert.NotEmpty(t, errs)

			found := false
			for _, e := range errs {
				if e.Field == tc.field {
					found = true
				}
			}
			assert.True(t, found, "expected an error on %s, got %v", tc.field, errs)
		})
	}
}

func TestValidateUpdateLeadInput(t *testing.T) {
	valid := entity.StatusContacted
	invalid := "archived"
	notes := "called twice, follow up on Monday"

	assert.Empty(t, ValidateUpdateLeadInput(UpdateLeadInput{}))
	assert.Empty(t, ValidateUpdateLeadInput(UpdateLeadInput{Status: &valid, Notes: &notes}))

	errs := ValidateUpdateLeadInput(UpdateLeadInput{Status: &invalid})
	assert.Len(t, errs, 1)
	assert.Equal(t, "status", errs[0].Field)
}

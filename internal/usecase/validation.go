package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/acsolutions-lk/energy-leads-api/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateCreateLeadInput checks the calculator submission before anything
// is derived or persisted. Numeric fields must be positive: a JSON zero
// value is indistinguishable from an absent field.
func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Company.Name) == "" {
		errors = append(errors, ValidationError{"company.name", "is required"})
	} else if len(input.Company.Name) > 200 {
		errors = append(errors, ValidationError{"company.name", "must not exceed 200 characters"})
	}

	if input.Company.OfficeSize <= 0 {
		errors = append(errors, ValidationError{"company.officeSize", "must be greater than zero"})
	}
	if input.Company.ACUnits <= 0 {
		errors = append(errors, ValidationError{"company.acUnits", "must be greater than zero"})
	}
	if !entity.IsValidACType(input.Company.CurrentACType) {
		errors = append(errors, ValidationError{"company.currentACType", "must be non-inverter or old-inverter"})
	}

	if input.Consumption.MonthlyBill <= 0 {
		errors = append(errors, ValidationError{"consumption.monthlyBill", "must be greater than zero"})
	}
	if input.Consumption.OperatingHours <= 0 {
		errors = append(errors, ValidationError{"consumption.operatingHours", "must be greater than zero"})
	}
	if input.Consumption.CurrentUsage < 0 {
		errors = append(errors, ValidationError{"consumption.currentUsage", "must not be negative"})
	}
	if input.Consumption.ProjectedUsage < 0 {
		errors = append(errors, ValidationError{"consumption.projectedUsage", "must not be negative"})
	}

	if input.ProjectedSavings.Monthly < 0 {
		errors = append(errors, ValidationError{"projectedSavings.monthly", "must not be negative"})
	}
	if input.ProjectedSavings.Yearly < 0 {
		errors = append(errors, ValidationError{"projectedSavings.yearly", "must not be negative"})
	}
	if input.ProjectedSavings.FiveYear < 0 {
		errors = append(errors, ValidationError{"projectedSavings.fiveYear", "must not be negative"})
	}
	if input.ProjectedSavings.SavingsPercentage < 0 || input.ProjectedSavings.SavingsPercentage > 100 {
		errors = append(errors, ValidationError{"projectedSavings.savingsPercentage", "must be between 0 and 100"})
	}
	if input.ProjectedSavings.CO2Reduction < 0 {
		errors = append(errors, ValidationError{"projectedSavings.co2Reduction", "must not be negative"})
	}

	email := strings.TrimSpace(input.Contact.Email)
	if email == "" {
		errors = append(errors, ValidationError{"contact.email", "is required"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errors = append(errors, ValidationError{"contact.email", "is invalid"})
	}

	if strings.TrimSpace(input.Contact.Phone) == "" {
		errors = append(errors, ValidationError{"contact.phone", "is required"})
	}

	return errors
}

// ValidateUpdateLeadInput guards the staff update path. Only provided
// fields are checked; a nil pointer means "leave untouched".
func ValidateUpdateLeadInput(input UpdateLeadInput) []ValidationError {
	var errors []ValidationError

	if input.Status != nil && !entity.IsValidStatus(*input.Status) {
		errors = append(errors, ValidationError{"status", "must be one of new, contacted, qualified, converted, lost"})
	}
	if input.Notes != nil && len(*input.Notes) > 5000 {
		errors = append(errors, ValidationError{"notes", "must not exceed 5000 characters"})
	}

	return errors
}

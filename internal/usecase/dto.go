package usecase

type CompanyInput struct {
	Name          string  `json:"name"`
	OfficeSize    float64 `json:"officeSize"`
	ACUnits       int     `json:"acUnits"`
	CurrentACType string  `json:"currentACType"`
}

type ConsumptionInput struct {
	MonthlyBill    float64 `json:"monthlyBill"`
	OperatingHours float64 `json:"operatingHours"`
	CurrentUsage   float64 `json:"currentUsage"`
	ProjectedUsage float64 `json:"projectedUsage"`
}

type SavingsInput struct {
	Monthly           float64 `json:"monthly"`
	Yearly            float64 `json:"yearly"`
	FiveYear          float64 `json:"fiveYear"`
	SavingsPercentage float64 `json:"savingsPercentage"`
	CO2Reduction      float64 `json:"co2Reduction"`
}

type ContactInput struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CreateLeadInput struct {
	Company          CompanyInput     `json:"company"`
	Consumption      ConsumptionInput `json:"consumption"`
	ProjectedSavings SavingsInput     `json:"projectedSavings"`
	Contact          ContactInput     `json:"contact"`
}

// CreateLeadOutput is what the caller gets back right away. EmailSent is
// always false here: the report goes out in the background after the
// response is written.
type CreateLeadOutput struct {
	LeadID    string `json:"leadId"`
	LeadScore int    `json:"leadScore"`
	Priority  string `json:"priority"`
	EmailSent bool   `json:"emailSent"`
}

// UpdateLeadInput carries the staff-editable fields. Pointers distinguish
// "not provided" from an explicit empty value, so the update only touches
// the fields the caller sent.
type UpdateLeadInput struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}


package entity

import (
	"context"
	"errors"
	"strings"
	"time"
)

const DefaultSource = "Energy_Savings_Calculator"

// Priority buckets derived from the lead score.
const (
	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
	PriorityLow    = "LOW"
)

// Status values the sales team moves a lead through.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusQualified = "qualified"
	StatusConverted = "converted"
	StatusLost      = "lost"
)

// AC types accepted by the calculator.
const (
	ACTypeNonInverter = "non-inverter"
	ACTypeOldInverter = "old-inverter"
)

var (
	ErrLeadNotFound    = errors.New("lead not found")
	ErrDuplicateLeadID = errors.New("lead id already exists")
)

type Company struct {
	Name          string  `json:"name"`
	OfficeSize    float64 `json:"officeSize"`
	ACUnits       int     `json:"acUnits"`
	CurrentACType string  `json:"currentACType"`
}

type Consumption struct {
	MonthlyBill    float64 `json:"monthlyBill"`
	OperatingHours float64 `json:"operatingHours"`
	CurrentUsage   float64 `json:"currentUsage"`
	ProjectedUsage float64 `json:"projectedUsage"`
}

type ProjectedSavings struct {
	Monthly           float64 `json:"monthly"`
	Yearly            float64 `json:"yearly"`
	FiveYear          float64 `json:"fiveYear"`
	SavingsPercentage float64 `json:"savingsPercentage"`
	CO2Reduction      float64 `json:"co2Reduction"`
}

type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Lead struct {
	LeadID           string           `json:"leadId"`
	Company          Company          `json:"company"`
	Consumption      Consumption      `json:"consumption"`
	ProjectedSavings ProjectedSavings `json:"projectedSavings"`
	Contact          Contact          `json:"contact"`
	LeadScore        int              `json:"leadScore"`
	Priority         string           `json:"priority"`
	Source           string           `json:"source"`
	Status           string           `json:"status"`
	EmailSent        bool             `json:"emailSent"`
	Notes            string           `json:"notes"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// LeadFilter narrows a listing. Zero values mean "no filter"; Limit and
// Offset are already resolved from page/limit by the caller.
type LeadFilter struct {
	Priority string
	Status   string
	Limit    int
	Offset   int
}

type PriorityBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type LeadStats struct {
	TotalLeads        int               `json:"totalLeads"`
	PriorityBreakdown PriorityBreakdown `json:"priorityBreakdown"`
	StatusBreakdown   map[string]int    `json:"statusBreakdown"`
	AverageLeadScore  float64           `json:"averageLeadScore"`
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindByLeadID(ctx context.Context, leadID string) (*Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]*Lead, int, error)
	UpdateStatusNotes(ctx context.Context, leadID string, status, notes *string) (*Lead, error)
	UpdateEmailSent(ctx context.Context, leadID string, sent bool) error
	Delete(ctx context.Context, leadID string) error
	Stats(ctx context.Context) (*LeadStats, error)
}

func IsValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusConverted, StatusLost:
		return true
	}
	return false
}

func IsValidACType(t string) bool {
	return t == ACTypeNonInverter || t == ACTypeOldInverter
}

func IsValidPriority(p string) bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// NormalizeEmail lowercases and trims, matching what the store persists.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate is the store-level guard: partial records never reach the database.
func (l *Lead) Validate() error {
	if l.LeadID == "" {
		return errors.New("leadId is required")
	}
	if l.Company.Name == "" {
		return errors.New("company name is required")
	}
	if !IsValidACType(l.Company.CurrentACType) {
		return errors.New("company currentACType must be non-inverter or old-inverter")
	}
	if l.Contact.Email == "" {
		return errors.New("contact email is required")
	}
	if l.Contact.Phone == "" {
		return errors.New("contact phone is required")
	}
	if l.LeadScore < 0 || l.LeadScore > 100 {
		return errors.New("leadScore must be between 0 and 100")
	}
	if !IsValidPriority(l.Priority) {
		return errors.New("priority must be HIGH, MEDIUM or LOW")
	}
	if !IsValidStatus(l.Status) {
		return errors.New("status is invalid")
	}
	return nil
}

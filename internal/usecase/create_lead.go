package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/acsolutions-lk/energy-leads-api/internal/entity"
	"github.com/acsolutions-lk/energy-leads-api/internal/infra/http/middleware"
)

const reconcileTimeout = 10 * time.Second

type CreateLeadUseCase struct {
	Repo         entity.LeadRepositoryInterface
	EmailService EmailService
	MailTimeout  time.Duration
	Logger       *zap.Logger
}

func NewCreateLeadUseCase(
	repo entity.LeadRepositoryInterface,
	emailService EmailService,
	mailTimeout time.Duration,
	logger *zap.Logger,
) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Repo:         repo,
		EmailService: emailService,
		MailTimeout:  mailTimeout,
		Logger:       logger,
	}
}

// Execute validates the submission, derives score/priority/id, persists the
// lead and returns right away. The savings report goes out on a detached
// goroutine: the caller never waits on the mail provider.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*CreateLeadOutput, error) {
	if validationErrors := ValidateCreateLeadInput(input); len(validationErrors) > 0 {
		return nil, newValidationFailed(validationErrors)
	}

	score := CalculateLeadScore(input)
	now := time.Now()

	lead := &entity.Lead{
		LeadID: GenerateLeadID(),
		Company: entity.Company{
			Name:          input.Company.Name,
			OfficeSize:    input.Company.OfficeSize,
			ACUnits:       input.Company.ACUnits,
			CurrentACType: input.Company.CurrentACType,
		},
		Consumption: entity.Consumption{
			MonthlyBill:    input.Consumption.MonthlyBill,
			OperatingHours: input.Consumption.OperatingHours,
			CurrentUsage:   input.Consumption.CurrentUsage,
			ProjectedUsage: input.Consumption.ProjectedUsage,
		},
		ProjectedSavings: entity.ProjectedSavings{
			Monthly:           input.ProjectedSavings.Monthly,
			Yearly:            input.ProjectedSavings.Yearly,
			FiveYear:          input.ProjectedSavings.FiveYear,
			SavingsPercentage: input.ProjectedSavings.SavingsPercentage,
			CO2Reduction:      input.ProjectedSavings.CO2Reduction,
		},
		Contact: entity.Contact{
			Email: entity.NormalizeEmail(input.Contact.Email),
			Phone: input.Contact.Phone,
		},
		LeadScore: score,
		Priority:  LeadPriority(score),
		Source:    entity.DefaultSource,
		Status:    entity.StatusNew,
		EmailSent: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	uc.Logger.Info("lead captured",
		zap.String("lead_id", lead.LeadID),
		zap.Int("lead_score", lead.LeadScore),
		zap.String("priority", lead.Priority),
	)

	go uc.dispatchSavingsReport(lead)

	return &CreateLeadOutput{
		LeadID:    lead.LeadID,
		LeadScore: lead.LeadScore,
		Priority:  lead.Priority,
		EmailSent: false,
	}, nil
}

// dispatchSavingsReport owns its own error handling: nothing here can reach
// the request that created the lead. The only observable effect is the
// email_sent flag written back onto the record.
func (uc *CreateLeadUseCase) dispatchSavingsReport(lead *entity.Lead) {
	sent := uc.sendReportWithTimeout(lead)
	middleware.RecordSavingsReport(sent)

	ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
	defer cancel()

	if err := uc.Repo.UpdateEmailSent(ctx, lead.LeadID, sent); err != nil {
		uc.Logger.Error("failed to record savings report outcome",
			zap.String("lead_id", lead.LeadID),
			zap.Bool("email_sent", sent),
			zap.Error(err),
		)
		return
	}

	uc.Logger.Info("savings report outcome recorded",
		zap.String("lead_id", lead.LeadID),
		zap.Bool("email_sent", sent),
	)
}

// sendReportWithTimeout races the send against a timer. First to complete
// wins; a send that finishes after the deadline is ignored, not cancelled
// (the email may still arrive even though we record a failure). Every
// failure collapses to false.
func (uc *CreateLeadUseCase) sendReportWithTimeout(lead *entity.Lead) bool {
	done := make(chan error, 1) // buffered so a late sender never blocks
	go func() {
		done <- uc.EmailService.SendSavingsReport(lead)
	}()

	select {
	case err := <-done:
		if err != nil {
			uc.Logger.Warn("savings report send failed",
				zap.String("lead_id", lead.LeadID),
				zap.String("to", lead.Contact.Email),
				zap.Error(err),
			)
			return false
		}
		return true
	case <-time.After(uc.MailTimeout):
		uc.Logger.Warn("savings report send timed out",
			zap.String("lead_id", lead.LeadID),
			zap.String("to", lead.Contact.Email),
			zap.Duration("timeout", uc.MailTimeout),
		)
		return false
	}
}

package usecase

import (
	"github.com/acsolutions-lk/energy-leads-api/internal/entity"
)

type EmailService interface {
	SendSavingsReport(lead *entity.Lead) error
}

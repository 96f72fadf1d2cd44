package mail

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"math"
	"strconv"
	texttemplate "text/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/acsolutions-lk/energy-leads-api/internal/entity"
)

//go:embed templates/report.html templates/report.txt
var templateFS embed.FS

var (
	htmlReport = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/report.html"))
	textReport = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/report.txt"))

	numberPrinter = message.NewPrinter(language.English)
)

// BuildSavingsReport renders the subject, plain-text and HTML bodies for a
// lead's savings report. The lead is read, never mutated.
func BuildSavingsReport(lead *entity.Lead) (subject, text, html string, err error) {
	data := SavingsReportData{
		CompanyName:       lead.Company.Name,
		ACUnits:           lead.Company.ACUnits,
		OperatingHours:    trimFloat(lead.Consumption.OperatingHours),
		OfficeSize:        formatAmount(lead.Company.OfficeSize),
		MonthlySavings:    formatAmount(lead.ProjectedSavings.Monthly),
		YearlySavings:     formatAmount(lead.ProjectedSavings.Yearly),
		FiveYearSavings:   formatAmount(lead.ProjectedSavings.FiveYear),
		SavingsPercentage: trimFloat(lead.ProjectedSavings.SavingsPercentage),
		CO2Reduction:      formatAmount(lead.ProjectedSavings.CO2Reduction),
		Phone:             lead.Contact.Phone,
		Email:             lead.Contact.Email,
		LeadID:            lead.LeadID,
	}

	var textBuf bytes.Buffer
	if err := textReport.Execute(&textBuf, data); err != nil {
		return "", "", "", fmt.Errorf("render text report: %w", err)
	}

	var htmlBuf bytes.Buffer
	if err := htmlReport.Execute(&htmlBuf, data); err != nil {
		return "", "", "", fmt.Errorf("render html report: %w", err)
	}

	subject = fmt.Sprintf("Your Potential Savings: LKR %s/year - %s",
		data.YearlySavings, lead.Company.Name)

	return subject, textBuf.String(), htmlBuf.String(), nil
}

// formatAmount rounds to a whole number and groups thousands, e.g. 1234567
// becomes "1,234,567".
func formatAmount(v float64) string {
	return numberPrinter.Sprintf("%d", int64(math.Round(v)))
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

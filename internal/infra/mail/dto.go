package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// SavingsReportData feeds the report templates. Numbers arrive already
// formatted so the templates stay pure markup.
type SavingsReportData struct {
	CompanyName       string
	ACUnits           int
	OperatingHours    string
	OfficeSize        string
	MonthlySavings    string
	YearlySavings     string
	FiveYearSavings   string
	SavingsPercentage string
	CO2Reduction      string
	Phone             string
	Email             string
	LeadID            string
}

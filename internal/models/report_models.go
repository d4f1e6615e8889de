package models

// DateRange is an inclusive span of days, both ends as YYYY-MM-DD.
type DateRange struct {
	Start string `json:"start_date" form:"start"`
	End   string `json:"end_date" form:"end"`
}

// AnalysisItem is one day of one employee's cost on a boat.
type AnalysisItem struct {
	Date         string  `json:"date"`
	EmployeeName string  `json:"employee_name"`
	DailyCost    float64 `json:"daily_cost"`
	OvertimeCost float64 `json:"overtime_cost"`
	TotalCost    float64 `json:"total_cost"`
}

// BoatAnalysisResponse is the boat-scoped cost breakdown over a range.
type BoatAnalysisResponse struct {
	BoatID       int64          `json:"boat_id"`
	BoatName     string         `json:"boat_name"`
	StartDate    string         `json:"start_date"`
	EndDate      string         `json:"end_date"`
	TotalCost    float64        `json:"total_cost"`
	AnalysisData []AnalysisItem `json:"analysis_data"`
}

// ExpenseItem is one cost-bearing record in an expense report.
type ExpenseItem struct {
	Date         string  `json:"date"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	BoatID       int64   `json:"boat_id"`
	BoatName     string  `json:"boat_name"`
	DailyCost    float64 `json:"daily_cost"`
	OvertimeCost float64 `json:"overtime_cost"`
	ExtraCost    float64 `json:"extra_cost"`
	ExtraReason  *string `json:"extra_reason,omitempty"`
	TotalCost    float64 `json:"total_cost"`
}

// ExpensesResponse lists expense rows and their sum.
type ExpensesResponse struct {
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	TotalSum  float64       `json:"total_sum"`
	Results   []ExpenseItem `json:"results"`
}

// PaymentItem is one employee's pay over a payroll range.
type PaymentItem struct {
	EmployeeID    int64   `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	DaysWorked    int     `json:"days_worked"`
	HalfDays      int     `json:"half_days"`
	TotalWage     float64 `json:"total_wage"`
	TotalOvertime float64 `json:"total_overtime"`
	TotalExtra    float64 `json:"total_extra"`
	GrandTotal    float64 `json:"grand_total"`
	BankPay       float64 `json:"bank_pay"`
	CashPay       float64 `json:"cash_pay"`
}

// PayrollReport is the payroll for a range.
type PayrollReport struct {
	StartDate  string        `json:"start_date"`
	EndDate    string        `json:"end_date"`
	Payments   []PaymentItem `json:"payments"`
	TotalBank  float64       `json:"total_bank"`
	TotalCash  float64       `json:"total_cash"`
	GrandTotal float64       `json:"grand_total"`
}

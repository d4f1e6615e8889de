package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/AlexNT-maker/auto-payroll-system/internal/attendance"
	"github.com/AlexNT-maker/auto-payroll-system/internal/models"
	"github.com/AlexNT-maker/auto-payroll-system/pkg/utils"
)

const (
	msgLoadFailed   = "Αποτυχία φόρτωσης δεδομένων"
	msgSaveFailed   = "Αποτυχία αποθήκευσης"
	msgDeleteFailed = "Αποτυχία διαγραφής"
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func printDay(out io.Writer, view *attendance.DayView) {
	boatNames := make(map[int64]string, len(view.Boats))
	for _, b := range view.Boats {
		boatNames[b.ID] = b.Name
	}

	fmt.Fprintf(out, "%s (%s)\n", view.Date, view.Form.State())
	w := newTable(out)
	fmt.Fprintln(w, "ID\tEMPLOYEE\tPRESENT\tBOAT\tOVERTIME")
	for _, r := range view.Rows {
		present, boat := "[ ]", "-- Επιλογή --"
		if r.Present {
			present = "[x]"
		}
		if r.HasBoat() {
			boat = boatNames[*r.BoatID]
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%g\n", r.EmployeeID, r.EmployeeName, present, boat, r.OvertimeHours)
	}
	w.Flush()
}

func printPayroll(out io.Writer, report *models.PayrollReport) {
	fmt.Fprintf(out, "Payroll %s .. %s\n", report.StartDate, report.EndDate)
	w := newTable(out)
	fmt.Fprintln(w, "EMPLOYEE\tDAYS\tHALF\tWAGE\tOVERTIME\tEXTRA\tTOTAL\tBANK\tCASH")
	for _, p := range report.Payments {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.EmployeeName, p.DaysWorked, p.HalfDays,
			money(p.TotalWage), money(p.TotalOvertime), money(p.TotalExtra),
			money(p.GrandTotal), money(p.BankPay), money(p.CashPay))
	}
	fmt.Fprintf(w, "TOTAL\t\t\t\t\t\t%s\t%s\t%s\n",
		money(report.GrandTotal), money(report.TotalBank), money(report.TotalCash))
	w.Flush()
}

func printExpenses(out io.Writer, resp *models.ExpensesResponse) {
	fmt.Fprintf(out, "Expenses %s .. %s\n", resp.StartDate, resp.EndDate)
	w := newTable(out)
	fmt.Fprintln(w, "DATE\tEMPLOYEE\tBOAT\tDAILY\tOVERTIME\tEXTRA\tTOTAL\tREASON")
	for _, e := range resp.Results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Date, e.EmployeeName, e.BoatName,
			money(e.DailyCost), money(e.OvertimeCost), money(e.ExtraCost),
			money(e.TotalCost), utils.StringValue(e.ExtraReason))
	}
	fmt.Fprintf(w, "TOTAL\t\t\t\t\t\t%s\t\n", money(resp.TotalSum))
	w.Flush()
}

func printAnalysis(out io.Writer, resp *models.BoatAnalysisResponse) {
	fmt.Fprintf(out, "%s %s .. %s\n", resp.BoatName, resp.StartDate, resp.EndDate)
	w := newTable(out)
	fmt.Fprintln(w, "DATE\tEMPLOYEE\tDAILY\tOVERTIME\tTOTAL")
	for _, item := range resp.AnalysisData {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			item.Date, item.EmployeeName,
			money(item.DailyCost), money(item.OvertimeCost), money(item.TotalCost))
	}
	fmt.Fprintf(w, "TOTAL\t\t\t\t%s\n", money(resp.TotalCost))
	w.Flush()
}

func printEmployees(out io.Writer, employees []models.Employee) {
	w := newTable(out)
	fmt.Fprintln(w, "ID\tNAME\tDAILY WAGE\tOVERTIME RATE\tBANK DAILY")
	for _, e := range employees {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			e.ID, e.Name, money(e.DailyWage), money(e.OvertimeRate), money(e.BankDailyAmount))
	}
	w.Flush()
}

func printBoats(out io.Writer, boats []models.Boat) {
	w := newTable(out)
	fmt.Fprintln(w, "ID\tNAME")
	for _, b := range boats {
		fmt.Fprintf(w, "%d\t%s\n", b.ID, b.Name)
	}
	w.Flush()
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AlexNT-maker/auto-payroll-system/internal/models"
	"github.com/AlexNT-maker/auto-payroll-system/internal/reports"
)

func addRangeFlags(cmd *cobra.Command, r *models.DateRange) {
	cmd.Flags().StringVar(&r.Start, "start", "", "First day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&r.End, "end", "", "Last day (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
}

// optionalID maps the zero flag value to "no filter".
func optionalID(id int64) *int64 {
	if id <= 0 {
		return nil
	}
	return &id
}

func payrollCmd(flags *globalFlags) *cobra.Command {
	var (
		dateRange models.DateRange
		pdfPath   string
		xlsxPath  string
		showURL   bool
	)
	cmd := &cobra.Command{
		Use:   "payroll",
		Short: "Payroll over a date range",
		RunE: withApp(flags, func(ctx context.Context, a *app, _ []string) error {
			report, err := a.reports.Payroll(ctx, dateRange)
			if err != nil {
				return err
			}
			printPayroll(a.out, report)

			if showURL {
				url, err := a.reports.PayrollPDFURL(dateRange)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, url)
			}
			if pdfPath != "" {
				data, err := a.reports.DownloadPayrollPDF(ctx, dateRange)
				if err != nil {
					return err
				}
				if err := os.WriteFile(pdfPath, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", pdfPath, err)
				}
				fmt.Fprintf(a.out, "wrote %s\n", pdfPath)
			}
			if xlsxPath != "" {
				data, err := a.reports.DownloadPayrollXLSX(ctx, dateRange)
				if err != nil {
					return err
				}
				if err := os.WriteFile(xlsxPath, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", xlsxPath, err)
				}
				fmt.Fprintf(a.out, "wrote %s\n", xlsxPath)
			}
			return nil
		}),
	}
	addRangeFlags(cmd, &dateRange)
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Save the payroll PDF to this file")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Save the payroll spreadsheet to this file")
	cmd.Flags().BoolVar(&showURL, "url", false, "Print the payroll PDF address")
	return cmd
}

func expensesCmd(flags *globalFlags) *cobra.Command {
	var (
		dateRange  models.DateRange
		boatID     int64
		employeeID int64
	)
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Cost of every record over a date range",
		RunE: withApp(flags, func(ctx context.Context, a *app, _ []string) error {
			resp, err := a.reports.Expenses(ctx, dateRange, reports.ExpenseFilter{
				BoatID:     optionalID(boatID),
				EmployeeID: optionalID(employeeID),
			})
			if err != nil {
				return err
			}
			printExpenses(a.out, resp)
			return nil
		}),
	}
	addRangeFlags(cmd, &dateRange)
	cmd.Flags().Int64Var(&boatID, "boat", 0, "Only this boat")
	cmd.Flags().Int64Var(&employeeID, "employee", 0, "Only this employee")
	return cmd
}

func analysisCmd(flags *globalFlags) *cobra.Command {
	var (
		dateRange models.DateRange
		boatID    int64
	)
	cmd := &cobra.Command{
		Use:   "analysis",
		Short: "Cost breakdown of one boat over a date range",
		RunE: withApp(flags, func(ctx context.Context, a *app, _ []string) error {
			resp, err := a.reports.BoatAnalysis(ctx, boatID, dateRange)
			if err != nil {
				return err
			}
			printAnalysis(a.out, resp)
			return nil
		}),
	}
	addRangeFlags(cmd, &dateRange)
	cmd.Flags().Int64Var(&boatID, "boat", 0, "Boat id")
	_ = cmd.MarkFlagRequired("boat")
	return cmd
}

func extraCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extra",
		Short: "Extra payments",
	}

	var (
		dateRange  models.DateRange
		employeeID int64
		amount     float64
		reason     string
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Record an extra payment on the last day of the range and show the payroll",
		RunE: withApp(flags, func(ctx context.Context, a *app, _ []string) error {
			report, err := a.reports.AddExtra(ctx, dateRange, employeeID, amount, reason)
			if err != nil {
				return err
			}
			printPayroll(a.out, report)
			return nil
		}),
	}
	addRangeFlags(add, &dateRange)
	add.Flags().Int64Var(&employeeID, "employee", 0, "Employee id")
	add.Flags().Float64Var(&amount, "amount", 0, "Amount (negative for a deduction)")
	add.Flags().StringVar(&reason, "reason", "", "Reason")
	_ = add.MarkFlagRequired("employee")
	_ = add.MarkFlagRequired("amount")

	cmd.AddCommand(add)
	return cmd
}

package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/AlexNT-maker/auto-payroll-system/internal/attendance"
	"github.com/AlexNT-maker/auto-payroll-system/internal/models"
)

// mark is one --present flag: employee, boat and optional overtime.
type mark struct {
	EmployeeID    int64
	BoatID        int64
	OvertimeHours float64
}

// parseMark reads "employee:boat[:overtime]".
func parseMark(s string) (mark, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return mark{}, fmt.Errorf("invalid mark %q, want employee:boat[:overtime]", s)
	}
	emp, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || emp <= 0 {
		return mark{}, fmt.Errorf("invalid employee id in %q", s)
	}
	boat, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || boat <= 0 {
		return mark{}, fmt.Errorf("invalid boat id in %q", s)
	}
	m := mark{EmployeeID: emp, BoatID: boat}
	if len(parts) == 3 {
		hours, err := strconv.ParseFloat(parts[2], 64)
		if err != nil || hours < 0 {
			return mark{}, fmt.Errorf("invalid overtime in %q", s)
		}
		m.OvertimeHours = hours
	}
	return m, nil
}

// applyMarks edits an unlocked view. Employees listed in absent are
// unchecked; every mark checks its employee and sets boat and overtime.
func applyMarks(view *attendance.DayView, marks []mark, absent []int64) error {
	for _, id := range absent {
		if err := view.SetPresent(id, false); err != nil {
			return err
		}
	}
	for _, m := range marks {
		if err := view.SetPresent(m.EmployeeID, true); err != nil {
			return err
		}
		if err := view.SelectBoat(m.EmployeeID, m.BoatID); err != nil {
			return err
		}
		if err := view.SetOvertime(m.EmployeeID, m.OvertimeHours); err != nil {
			return err
		}
	}
	return nil
}

func today() string {
	return time.Now().Format(models.DateLayout)
}

func attendanceCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "attendance",
		Aliases: []string{"att"},
		Short:   "Show or save a day's attendance",
	}
	cmd.AddCommand(attendanceShowCmd(flags), attendanceSaveCmd(flags))
	return cmd
}

func attendanceShowCmd(flags *globalFlags) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the attendance table for a day",
		RunE: withApp(flags, func(ctx context.Context, a *app, _ []string) error {
			view, err := a.loader.LoadDay(ctx, date)
			if err != nil {
				return err
			}
			printDay(a.out, view)
			return nil
		}),
	}
	cmd.Flags().StringVar(&date, "date", today(), "Day (YYYY-MM-DD)")
	return cmd
}

func attendanceSaveCmd(flags *globalFlags) *cobra.Command {
	var (
		date    string
		present []string
		absent  []int64
		unlock  bool
	)
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Mark employees present and save the day",
		Long: `Loads the day, applies the marks and saves it.

A day that already has records is locked; pass --unlock to edit it.
Each --present is employee:boat[:overtime_hours]. Employees listed with
--absent are unchecked; if they were present their record is cleared.`,
		RunE: withApp(flags, func(ctx context.Context, a *app, _ []string) error {
			marks := make([]mark, 0, len(present))
			for _, p := range present {
				m, err := parseMark(p)
				if err != nil {
					return err
				}
				marks = append(marks, m)
			}

			view, err := a.loader.LoadDay(ctx, date)
			if err != nil {
				return err
			}
			if view.Form.State() == attendance.Locked {
				if !unlock {
					return fmt.Errorf("%w (use --unlock)", attendance.ErrFormLocked)
				}
				view.Form.Unlock()
			}
			if err := applyMarks(view, marks, absent); err != nil {
				return err
			}

			result, err := a.submitter.Submit(ctx, view)
			if result != nil {
				fmt.Fprintf(a.out, "batch %s: %d sent, %d saved, %d failed\n",
					result.BatchID, result.Sent, result.Saved, len(result.Failed))
				for _, f := range result.Failed {
					fmt.Fprintf(a.out, "  employee %d: %v\n", f.EmployeeID, f.Err)
				}
				if result.View != nil {
					printDay(a.out, result.View)
				}
			}
			if err != nil {
				return err
			}
			if len(result.Failed) > 0 {
				return errors.New("some rows were not saved")
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&date, "date", today(), "Day (YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&present, "present", nil, "employee:boat[:overtime] (repeatable)")
	cmd.Flags().Int64SliceVar(&absent, "absent", nil, "Employee ids to uncheck")
	cmd.Flags().BoolVar(&unlock, "unlock", false, "Edit a day that is already saved")
	return cmd
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlexNT-maker/auto-payroll-system/internal/apiclient"
	"github.com/AlexNT-maker/auto-payroll-system/pkg/utils"
)

func parseID(arg string) (int64, error) {
	id, err := utils.StrToInt64(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func addEmployeeFlags(cmd *cobra.Command, in *apiclient.EmployeeInput) {
	cmd.Flags().StringVar(&in.Name, "name", "", "Full name")
	cmd.Flags().Float64Var(&in.DailyWage, "daily-wage", 0, "Daily wage")
	cmd.Flags().Float64Var(&in.OvertimeRate, "overtime-rate", 0, "Overtime rate per hour")
	cmd.Flags().Float64Var(&in.BankDailyAmount, "bank-daily", 0, "Part of the daily wage paid through the bank")
	_ = cmd.MarkFlagRequired("name")
}

func employeesCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"emp"},
		Short:   "Manage employees",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		RunE: withApp(flags, func(ctx context.Context, a *app, _ []string) error {
			employees, err := a.client.ListEmployees(ctx)
			if err != nil {
				a.notifier.Alert(msgLoadFailed)
				return err
			}
			printEmployees(a.out, employees)
			return nil
		}),
	}

	var createIn apiclient.EmployeeInput
	add := &cobra.Command{
		Use:   "add",
		Short: "Create an employee",
		RunE: withApp(flags, func(ctx context.Context, a *app, _ []string) error {
			emp, err := a.client.CreateEmployee(ctx, createIn)
			if err != nil {
				a.notifier.Alert(msgSaveFailed)
				return err
			}
			fmt.Fprintf(a.out, "created employee %d (%s)\n", emp.ID, emp.Name)
			return nil
		}),
	}
	addEmployeeFlags(add, &createIn)

	var updateIn apiclient.EmployeeInput
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace an employee's details",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(flags, func(ctx context.Context, a *app, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			emp, err := a.client.UpdateEmployee(ctx, id, updateIn)
			if err != nil {
				a.notifier.Alert(msgSaveFailed)
				return err
			}
			fmt.Fprintf(a.out, "updated employee %d (%s)\n", emp.ID, emp.Name)
			return nil
		}),
	}
	addEmployeeFlags(update, &updateIn)

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an employee without attendance",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(flags, func(ctx context.Context, a *app, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.client.DeleteEmployee(ctx, id); err != nil {
				a.notifier.Alert(msgDeleteFailed)
				return err
			}
			fmt.Fprintf(a.out, "deleted employee %d\n", id)
			return nil
		}),
	}

	cmd.AddCommand(list, add, update, del)
	return cmd
}

func boatsCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boats",
		Short: "Manage boats",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List boats",
		RunE: withApp(flags, func(ctx context.Context, a *app, _ []string) error {
			boats, err := a.client.ListBoats(ctx)
			if err != nil {
				a.notifier.Alert(msgLoadFailed)
				return err
			}
			printBoats(a.out, boats)
			return nil
		}),
	}

	var name string
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a boat",
		RunE: withApp(flags, func(ctx context.Context, a *app, _ []string) error {
			boat, err := a.client.CreateBoat(ctx, name)
			if err != nil {
				a.notifier.Alert(msgSaveFailed)
				return err
			}
			fmt.Fprintf(a.out, "created boat %d (%s)\n", boat.ID, boat.Name)
			return nil
		}),
	}
	add.Flags().StringVar(&name, "name", "", "Boat name")
	_ = add.MarkFlagRequired("name")

	var newName string
	update := &cobra.Command{
		Use:   "rename <id>",
		Short: "Rename a boat",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(flags, func(ctx context.Context, a *app, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			boat, err := a.client.UpdateBoat(ctx, id, newName)
			if err != nil {
				a.notifier.Alert(msgSaveFailed)
				return err
			}
			fmt.Fprintf(a.out, "renamed boat %d to %s\n", boat.ID, boat.Name)
			return nil
		}),
	}
	update.Flags().StringVar(&newName, "name", "", "New boat name")
	_ = update.MarkFlagRequired("name")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a boat without attendance",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(flags, func(ctx context.Context, a *app, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.client.DeleteBoat(ctx, id); err != nil {
				a.notifier.Alert(msgDeleteFailed)
				return err
			}
			fmt.Fprintf(a.out, "deleted boat %d\n", id)
			return nil
		}),
	}

	cmd.AddCommand(list, add, update, del)
	return cmd
}

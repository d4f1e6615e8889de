package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/AlexNT-maker/auto-payroll-system/internal/apiclient"
	"github.com/AlexNT-maker/auto-payroll-system/internal/attendance"
	"github.com/AlexNT-maker/auto-payroll-system/internal/cliconfig"
	"github.com/AlexNT-maker/auto-payroll-system/internal/reports"
	"github.com/AlexNT-maker/auto-payroll-system/pkg/utils"
)

// app is built once per invocation from the resolved config.
type app struct {
	cfg       *cliconfig.Config
	client    *apiclient.Client
	state     *attendance.State
	notifier  attendance.Notifier
	loader    *attendance.Loader
	submitter *attendance.Submitter
	reports   *reports.Aggregator
	out       io.Writer
}

type globalFlags struct {
	configPath string
	baseURL    string
	logLevel   string
	submitMode string
}

func newApp(flags *globalFlags, out, errOut io.Writer) (*app, error) {
	cfg, err := cliconfig.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	cfg.Merge(&cliconfig.Config{
		BaseURL:    flags.baseURL,
		LogLevel:   flags.logLevel,
		SubmitMode: flags.submitMode,
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	utils.InitLoggerWithWriter(errOut, cfg.LogLevel)

	client := apiclient.New(cfg.BaseURL, cfg.Timeout)
	state := attendance.NewState()
	notifier := attendance.WriterNotifier{W: errOut}
	loader := attendance.NewLoader(client, state, notifier)

	return &app{
		cfg:       cfg,
		client:    client,
		state:     state,
		notifier:  notifier,
		loader:    loader,
		submitter: attendance.NewSubmitter(client, loader, notifier, cfg.Mode()),
		reports:   reports.NewAggregator(client, notifier),
		out:       out,
	}, nil
}

// withApp builds the app and a signal-aware context before running fn.
func withApp(flags *globalFlags, fn func(ctx context.Context, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return fn(ctx, a, args)
	}
}

func rootCmd(out, errOut io.Writer) *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "boatpay",
		Short: "Boat crew attendance and payroll",
		Long: `boatpay records daily crew attendance on boats and reports
expenses, payroll and per-boat costs from the payroll backend.

Examples:
  boatpay attendance show --date 2024-05-01
  boatpay attendance save --date 2024-05-01 --present 3:2:1.5 --present 4:2
  boatpay payroll --start 2024-05-01 --end 2024-05-31 --pdf payroll.pdf
  boatpay extra add --start 2024-05-01 --end 2024-05-31 --employee 3 --amount 50 --reason bonus
`,
		SilenceUsage: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file path (YAML, default ~/.config/boatpay/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.baseURL, "base-url", "", "Backend base URL")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.submitMode, "submit-mode", "", "Attendance submit mode (per_row, batch)")

	cmd.AddCommand(
		attendanceCmd(flags),
		payrollCmd(flags),
		expensesCmd(flags),
		analysisCmd(flags),
		extraCmd(flags),
		employeesCmd(flags),
		boatsCmd(flags),
		configCmd(flags),
	)
	return cmd
}

// Package cli implements the timesheet command line front-end.
package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/warp/timesheet/timesheet"
)

const (
	usage   = "timesheet"
	short   = "Generate a monthly timesheet."
	long    = `Generate a monthly timesheet.

Distributes the hours worked in a month over its business days in
half-hour steps, never going over the daily maximum. Leave is given as a
count (the last business days of the month are taken off) or as specific
days with --leave-days; when both are given they must agree.`
	example = `timesheet --hours 40 --max-hours 8 --leave 2 --month 12 --year 2024
timesheet --hours 40 --max-hours 8 --leave-days "1,15,30" --month 1 --year 2024`

	separator = "-------------------"
)

type options struct {
	hours     float64
	maxHours  float64
	leave     int
	leaveDays string
	month     int
	year      int
}

// NewCommand builds the root command. Results, notices and errors all go to
// out. now defaults the year when --year is not given.
func NewCommand(out io.Writer, now func() time.Time) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           usage,
		Short:         short,
		Long:          long,
		Example:       example,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, out, now)
		},
	}
	cmd.SetOut(out)

	f := cmd.Flags()
	f.Float64Var(&opts.hours, "hours", 0, "Total hours worked in the month (can be decimal)")
	f.Float64Var(&opts.maxHours, "max-hours", 0, "Maximum hours that can be worked in a single day (can be decimal)")
	f.IntVar(&opts.leave, "leave", 0, "Number of annual leave days taken (including bank holidays)")
	f.StringVar(&opts.leaveDays, "leave-days", "",
		"Comma-separated list of specific days when leave was taken (e.g., '1,10,15')")
	f.IntVar(&opts.month, "month", 0, "Month number (1-12)")
	f.IntVar(&opts.year, "year", 0, "Year (defaults to current year)")

	cmd.MarkFlagRequired("hours")
	cmd.MarkFlagRequired("max-hours")
	cmd.MarkFlagRequired("month")

	return cmd
}

// Execute runs the command with args, printing any failure as a single
// "Error: ..." line. It returns the process exit code.
func Execute(args []string, out io.Writer, now func() time.Time) int {
	cmd := NewCommand(out, now)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return 1
	}
	return 0
}

func run(cmd *cobra.Command, opts *options, out io.Writer, now func() time.Time) error {
	if opts.month < 1 || opts.month > 12 {
		return fmt.Errorf("%w: --month must be between 1 and 12, got %d", timesheet.ErrInvalidMonth, opts.month)
	}

	req := timesheet.Request{
		HoursWorked:    opts.hours,
		MaxHoursPerDay: opts.maxHours,
		Month:          opts.month,
		Year:           opts.year,
	}

	if cmd.Flags().Changed("leave") {
		leave := opts.leave
		req.LeaveCount = &leave
	}
	if cmd.Flags().Changed("leave-days") {
		days, err := timesheet.ParseLeaveDays(opts.leaveDays)
		if err != nil {
			return err
		}
		req.LeaveDays = days
	}
	if req.LeaveCount == nil && req.LeaveDays == nil {
		return errors.New("either --leave or --leave-days must be provided")
	}

	gen := timesheet.NewGenerator(
		timesheet.WithNotifier(printNotices(out)),
		timesheet.WithClock(now),
	)
	entries, err := gen.Distribute(req)
	if err != nil {
		return err
	}

	printTimeSheet(out, entries)
	return nil
}

func printNotices(out io.Writer) timesheet.Notifier {
	return timesheet.NotifierFunc(func(n timesheet.Notice) {
		prefix := "Note"
		if n.Severity == timesheet.SeverityWarning {
			prefix = "Warning"
		}
		fmt.Fprintf(out, "%s: %s\n", prefix, n.Message)
	})
}

func printTimeSheet(out io.Writer, entries []timesheet.Entry) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Time Sheet:")
	fmt.Fprintln(out, separator)
	for _, e := range entries {
		fmt.Fprintf(out, "%s: %.1f hours\n", e.Date, e.Hours.InexactFloat64())
	}
	fmt.Fprintln(out, separator)
	fmt.Fprintf(out, "Total: %.1f hours\n", timesheet.SumHours(entries).InexactFloat64())
}

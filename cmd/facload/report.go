package main

import (
	"context"
	"fmt"
	"time"

	"facultyload/internal/cli"
	"facultyload/internal/model"

	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize logged workload",
		Long: `Summarize logged hours per category for one user, or billable totals
across all faculty with --billing. The period defaults to the last 30
days.`,
		RunE: runReport,
	}

	cmd.Flags().String("user", "", "email of the user to summarize")
	cmd.Flags().String("from", "", "period start (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "period end (YYYY-MM-DD)")
	cmd.Flags().Bool("billing", false, "show billable totals per faculty member")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	store, err := openStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	ctx := cmd.Context()

	to := time.Now()
	from := to.AddDate(0, 0, -30)
	if s, _ := cmd.Flags().GetString("from"); s != "" {
		if from, err = parseDate(s); err != nil {
			return err
		}
	}
	if s, _ := cmd.Flags().GetString("to"); s != "" {
		if to, err = parseDate(s); err != nil {
			return err
		}
		// Include the whole end day.
		to = to.AddDate(0, 0, 1).Add(-time.Second)
	}

	if billing, _ := cmd.Flags().GetBool("billing"); billing {
		return runBillingReport(cmd, store, from, to)
	}

	email, _ := cmd.Flags().GetString("user")
	if email == "" {
		return fmt.Errorf("--user is required (or use --billing)")
	}

	user, err := store.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	summary, err := store.CategorySummary(ctx, user.ID, from, to)
	if err != nil {
		return err
	}

	cmd.Println(cli.TitleStyle.Render(fmt.Sprintf("Workload for %s (%s to %s)",
		user.Name, from.Format("2006-01-02"), to.Format("2006-01-02"))))

	var total float64
	for _, category := range model.Categories() {
		hours := summary[category]
		total += hours
		cmd.Printf("  %-14s %7.2fh\n", category, hours)
	}
	cmd.Printf("  %-14s %7.2fh\n", cli.BoldStyle.Render("total"), total)
	return nil
}

func runBillingReport(cmd *cobra.Command, store billingStore, from, to time.Time) error {
	reports, err := store.BillingSummary(cmd.Context(), from, to)
	if err != nil {
		return err
	}

	cmd.Println(cli.TitleStyle.Render(fmt.Sprintf("Billing summary (%s to %s)",
		from.Format("2006-01-02"), to.Format("2006-01-02"))))

	var grandTotal float64
	for _, report := range reports {
		grandTotal += report.TotalAmount
		cmd.Printf("  %-28s %7.2fh × %7.2f = %10.2f\n",
			report.UserName, report.TotalHours, report.HourlyRate, report.TotalAmount)
	}
	cmd.Printf("  %-28s %30.2f\n", cli.BoldStyle.Render("grand total"), grandTotal)
	return nil
}

// billingStore is the slice of storage the billing report needs.
type billingStore interface {
	BillingSummary(ctx context.Context, from, to time.Time) ([]model.BillingReport, error)
}

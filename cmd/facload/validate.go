package main

import (
	"facultyload/internal/cli"
	"facultyload/internal/model"
	"facultyload/internal/service"

	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a prospective entry without saving it",
		Long: `Run the validation checks for a prospective workload entry against a
user's existing entries. Nothing is persisted; the findings are printed
so the entry can be corrected before it is recorded.`,
		RunE: runValidate,
	}

	cmd.Flags().String("user", "", "email of the user the entry belongs to")
	cmd.Flags().String("date", "", "entry date (YYYY-MM-DD)")
	cmd.Flags().String("in", "", "start time (HH:MM)")
	cmd.Flags().String("out", "", "end time (HH:MM)")
	cmd.Flags().Float64("hours", 0, "total hours worked")
	cmd.Flags().String("activity", "", "activity description")

	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	_ = cmd.MarkFlagRequired("hours")
	_ = cmd.MarkFlagRequired("activity")

	return cmd
}

func runValidate(cmd *cobra.Command, _ []string) error {
	store, err := openStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	ctx := cmd.Context()

	email, _ := cmd.Flags().GetString("user")
	user, err := store.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	dateStr, _ := cmd.Flags().GetString("date")
	date, err := parseDate(dateStr)
	if err != nil {
		return err
	}

	timeIn, _ := cmd.Flags().GetString("in")
	timeOut, _ := cmd.Flags().GetString("out")
	hours, _ := cmd.Flags().GetFloat64("hours")
	activity, _ := cmd.Flags().GetString("activity")

	entry := model.WorkloadEntry{
		UserID:     user.ID,
		Date:       date,
		TimeIn:     timeIn,
		TimeOut:    timeOut,
		TotalHours: hours,
		Activity:   activity,
	}

	recorder := service.NewRecorder(store)
	result, err := recorder.Check(ctx, entry)
	if err != nil {
		return err
	}

	cmd.Print(cli.FormatValidationResult(result))
	return nil
}

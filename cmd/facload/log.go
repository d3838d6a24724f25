package main

import (
	"fmt"

	"facultyload/internal/cli"
	"facultyload/internal/model"
	"facultyload/internal/service"

	"github.com/spf13/cobra"
)

func logCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record and list workload entries",
	}

	cmd.AddCommand(logAddCmd())
	cmd.AddCommand(logListCmd())

	return cmd
}

func logAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a workload entry",
		Long: `Record a new workload entry for a user. The activity description is
classified automatically; a confident classification overrides the
category given with --category. The entry is then validated against the
user's history and any findings are attached to it as notes.`,
		RunE: runLogAdd,
	}

	cmd.Flags().String("user", "", "email of the user logging the entry")
	cmd.Flags().String("date", "", "entry date (YYYY-MM-DD)")
	cmd.Flags().String("in", "", "start time (HH:MM)")
	cmd.Flags().String("out", "", "end time (HH:MM)")
	cmd.Flags().Float64("hours", 0, "total hours worked")
	cmd.Flags().String("activity", "", "activity description")
	cmd.Flags().String("category", string(model.CategoryLecture), "workload category")
	cmd.Flags().Int64("subject", 0, "subject id (optional)")
	cmd.Flags().String("description", "", "longer description (optional)")
	cmd.Flags().String("location", "", "location (optional)")

	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	_ = cmd.MarkFlagRequired("hours")
	_ = cmd.MarkFlagRequired("activity")

	return cmd
}

func runLogAdd(cmd *cobra.Command, _ []string) error {
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
	categoryStr, _ := cmd.Flags().GetString("category")
	description, _ := cmd.Flags().GetString("description")
	location, _ := cmd.Flags().GetString("location")

	category, err := model.ParseCategory(categoryStr)
	if err != nil {
		return err
	}

	entry := model.WorkloadEntry{
		UserID:      user.ID,
		Date:        date,
		TimeIn:      timeIn,
		TimeOut:     timeOut,
		TotalHours:  hours,
		Activity:    activity,
		Category:    category,
		Description: description,
		Location:    location,
	}

	if subjectID, _ := cmd.Flags().GetInt64("subject"); subjectID != 0 {
		entry.SubjectID = &subjectID
	}

	recorder := service.NewRecorder(store)
	saved, result, err := recorder.Record(ctx, entry)
	if err != nil {
		return err
	}

	cmd.Printf("Recorded entry %d (%s, %.2fh)\n", saved.ID, saved.Category, saved.TotalHours)
	cmd.Print(cli.FormatValidationResult(result))
	return nil
}

func logListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workload entries",
		RunE:  runLogList,
	}

	cmd.Flags().String("user", "", "email of the user whose entries to list")
	cmd.Flags().Bool("all", false, "list entries for all users")
	cmd.Flags().Int("limit", 0, "maximum number of entries to show (with --all)")

	return cmd
}

func runLogList(cmd *cobra.Command, _ []string) error {
	store, err := openStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	ctx := cmd.Context()
	all, _ := cmd.Flags().GetBool("all")

	var entries []model.WorkloadEntry
	if all {
		limit, _ := cmd.Flags().GetInt("limit")
		entries, err = store.ListEntries(ctx, service.EntryFilter{Limit: limit})
	} else {
		email, _ := cmd.Flags().GetString("user")
		if email == "" {
			return fmt.Errorf("either --user or --all is required")
		}
		var user *model.User
		user, err = store.GetUserByEmail(ctx, email)
		if err != nil {
			return err
		}
		entries, err = store.ListEntriesByUser(ctx, user.ID)
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		cmd.Println("No entries found.")
		return nil
	}

	for _, entry := range entries {
		line := fmt.Sprintf("%5d  %s  %s-%s  %5.2fh  %-13s  %s",
			entry.ID,
			entry.Date.Format("2006-01-02"),
			entry.TimeIn,
			entry.TimeOut,
			entry.TotalHours,
			entry.Category,
			entry.Activity)
		cmd.Println(line)
		if entry.ValidationNotes != "" {
			cmd.Println(cli.WarningStyle.Render("       " + entry.ValidationNotes))
		}
	}
	return nil
}

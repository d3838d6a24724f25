package main

import (
	"context"
	"fmt"
	"time"

	"facultyload/internal/model"
	"facultyload/internal/service"
	"facultyload/internal/storage"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with sample data",
		Long: `Create sample departments, subjects, and faculty users, and record a
few weeks of workload entries for them. Intended for demos and local
development; run against an empty, migrated database.`,
		RunE: runSeed,
	}

	cmd.Flags().Int("weeks", 3, "weeks of sample entries to record per user")

	return cmd
}

type seedSubject struct {
	name    string
	code    string
	dept    string
	credits int
	kind    model.SubjectType
}

type seedUser struct {
	email       string
	name        string
	dept        string
	employeeID  string
	designation string
	rate        float64
}

var seedDepartments = []model.Department{
	{Name: "Artificial Intelligence & Data Science", Code: "AIDS"},
	{Name: "Mechatronics", Code: "MECT"},
	{Name: "Food Technology", Code: "FOOD"},
	{Name: "Electrical Engineering", Code: "ELEC"},
	{Name: "Civil & Infrastructure", Code: "CIVL"},
}

var seedSubjects = []seedSubject{
	{"Machine Learning", "AIDS101", "AIDS", 4, model.SubjectTheory},
	{"Deep Learning Lab", "AIDS102", "AIDS", 2, model.SubjectLab},
	{"Data Science Fundamentals", "AIDS103", "AIDS", 3, model.SubjectTheory},
	{"Python Programming", "AIDS104", "AIDS", 3, model.SubjectLab},
	{"Big Data Analytics", "AIDS105", "AIDS", 4, model.SubjectTheory},
	{"Robotics Engineering", "MECT101", "MECT", 4, model.SubjectTheory},
	{"Control Systems", "MECT102", "MECT", 3, model.SubjectTheory},
	{"Automation Lab", "MECT103", "MECT", 2, model.SubjectLab},
	{"Mechanical Design", "MECT104", "MECT", 3, model.SubjectTheory},
	{"Food Processing", "FOOD101", "FOOD", 3, model.SubjectTheory},
	{"Food Chemistry Lab", "FOOD102", "FOOD", 2, model.SubjectLab},
	{"Nutrition Science", "FOOD103", "FOOD", 3, model.SubjectTheory},
	{"Circuit Theory", "ELEC101", "ELEC", 4, model.SubjectTheory},
	{"Digital Electronics Lab", "ELEC102", "ELEC", 2, model.SubjectLab},
	{"Power Systems", "ELEC103", "ELEC", 3, model.SubjectTheory},
	{"Structural Analysis", "CIVL101", "CIVL", 4, model.SubjectTheory},
	{"Construction Materials Lab", "CIVL102", "CIVL", 2, model.SubjectLab},
	{"Infrastructure Planning", "CIVL103", "CIVL", 3, model.SubjectTheory},
}

var seedUsers = []seedUser{
	{"john.smith@university.edu", "Dr. John Smith", "AIDS", "FAC001", "Associate Professor", 800},
	{"sarah.johnson@university.edu", "Dr. Sarah Johnson", "MECT", "FAC002", "Assistant Professor", 700},
	{"michael.chen@university.edu", "Prof. Michael Chen", "FOOD", "FAC003", "Professor", 900},
	{"emily.davis@university.edu", "Dr. Emily Davis", "ELEC", "FAC004", "Assistant Professor", 750},
}

// seedWeek is the weekly entry pattern recorded for each faculty user.
var seedWeek = []struct {
	weekday  time.Weekday
	timeIn   string
	timeOut  string
	hours    float64
	activity string
	category model.Category
}{
	{time.Monday, "09:00", "11:00", 2, "Delivered lecture on course fundamentals", model.CategoryLecture},
	{time.Monday, "14:00", "16:00", 2, "Department faculty meeting and coordination", model.CategoryAdminWork},
	{time.Tuesday, "10:00", "13:00", 3, "Conducted laboratory session and practical exercises", model.CategoryLab},
	{time.Wednesday, "09:00", "10:30", 1.5, "Lecture and tutorial for second year class", model.CategoryLecture},
	{time.Thursday, "11:00", "13:00", 2, "Grading assessment papers and exam correction", model.CategoryEvaluation},
	{time.Friday, "15:00", "17:00", 2, "Research work on journal publication", model.CategoryResearchWork},
}

func runSeed(cmd *cobra.Command, _ []string) error {
	store, err := openStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	ctx := cmd.Context()
	weeks, _ := cmd.Flags().GetInt("weeks")

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	deptIDs := make(map[string]int64, len(seedDepartments))
	for _, dept := range seedDepartments {
		d := dept
		if err := store.CreateDepartment(ctx, &d); err != nil {
			return fmt.Errorf("failed to seed department %s: %w", d.Code, err)
		}
		deptIDs[d.Code] = d.ID
	}

	for _, subject := range seedSubjects {
		s := model.Subject{
			Name:         subject.name,
			Code:         subject.code,
			DepartmentID: deptIDs[subject.dept],
			Credits:      subject.credits,
			Type:         subject.kind,
		}
		if err := store.CreateSubject(ctx, &s); err != nil {
			return fmt.Errorf("failed to seed subject %s: %w", s.Code, err)
		}
	}

	admin := model.User{
		Email:       "admin@university.edu",
		Name:        "System Administrator",
		Role:        model.RoleAdmin,
		EmployeeID:  "ADMIN001",
		Designation: "System Administrator",
		Active:      true,
	}
	if err := store.CreateUser(ctx, &admin); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	users := make([]model.User, 0, len(seedUsers))
	for _, u := range seedUsers {
		deptID := deptIDs[u.dept]
		user := model.User{
			Email:        u.email,
			Name:         u.name,
			Role:         model.RoleFaculty,
			DepartmentID: &deptID,
			EmployeeID:   u.employeeID,
			Designation:  u.designation,
			HourlyRate:   u.rate,
			Active:       true,
		}
		if err := store.CreateUser(ctx, &user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", user.Email, err)
		}
		users = append(users, user)
	}

	if err := seedEntries(ctx, store, users, weeks, cmd); err != nil {
		return err
	}

	cmd.Printf("Seeded %d departments, %d subjects, %d users.\n",
		len(seedDepartments), len(seedSubjects), len(users)+1)
	return nil
}

// seedEntries records the weekly pattern through the Recorder so seeded
// data passes through the same classification and validation path as
// real entries.
func seedEntries(ctx context.Context, store *storage.SQLiteStorage, users []model.User, weeks int, cmd *cobra.Command) error {
	recorder := service.NewRecorder(store)

	total := len(users) * weeks * len(seedWeek)
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(cmd.OutOrStdout()),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Recording sample entries..."),
		progressbar.OptionOnCompletion(func() {
			cmd.Println()
		}),
	)

	// Start the sample window on the Monday weeks ago.
	start := time.Now().AddDate(0, 0, -7*weeks)
	for start.Weekday() != time.Monday {
		start = start.AddDate(0, 0, -1)
	}

	for _, user := range users {
		for week := 0; week < weeks; week++ {
			monday := start.AddDate(0, 0, 7*week)
			for _, item := range seedWeek {
				offset := int(item.weekday - time.Monday)
				entry := model.WorkloadEntry{
					UserID:     user.ID,
					Date:       monday.AddDate(0, 0, offset),
					TimeIn:     item.timeIn,
					TimeOut:    item.timeOut,
					TotalHours: item.hours,
					Activity:   item.activity,
					Category:   item.category,
				}
				if _, _, err := recorder.Record(ctx, entry); err != nil {
					return fmt.Errorf("failed to seed entry for %s: %w", user.Email, err)
				}
				_ = bar.Add(1)
			}
		}
	}

	return nil
}

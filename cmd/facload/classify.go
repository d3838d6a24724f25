package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"facultyload/internal/classify"
	"facultyload/internal/cli"

	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <activity description>",
		Short: "Infer the workload category of an activity description",
		Long: `Classify free-text activity descriptions into one of the workload
categories (lecture, lab, evaluation, admin_work, research_work) with a
confidence score. The subject name and session duration, when given,
refine the result.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runClassify,
	}

	cmd.Flags().String("subject", "", "subject name for context (e.g. \"Deep Learning Lab\")")
	cmd.Flags().Float64("duration", 0, "session duration in hours for context")
	cmd.Flags().Bool("json", false, "emit the result as JSON")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	subject, _ := cmd.Flags().GetString("subject")
	duration, _ := cmd.Flags().GetFloat64("duration")
	asJSON, _ := cmd.Flags().GetBool("json")

	activity := strings.Join(args, " ")
	result := classify.ClassifyWithContext(activity, subject, duration)

	if asJSON {
		out, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	cmd.Println(cli.FormatClassification(result))
	return nil
}

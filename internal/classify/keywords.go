package classify

import "facultyload/internal/model"

// categoryKeywords pairs a category with the lowercase substrings that
// vote for it. The table is an ordered slice, not a map: when two
// categories score the same, the one listed first wins, so iteration
// order is part of the contract.
type categoryKeywords struct {
	category model.Category
	keywords []string
}

var keywordTable = []categoryKeywords{
	{
		category: model.CategoryLecture,
		keywords: []string{
			"lecture", "teach", "class", "lesson", "instruction", "seminar", "tutorial",
			"deliver", "present", "explain", "demonstrate", "conduct", "course", "subject",
		},
	},
	{
		category: model.CategoryLab,
		keywords: []string{
			"lab", "laboratory", "practical", "experiment", "workshop", "hands-on",
			"demonstration", "session", "exercise", "project work", "technical",
		},
	},
	{
		category: model.CategoryEvaluation,
		keywords: []string{
			"exam", "test", "assessment", "evaluation", "grading", "marking", "checking",
			"correction", "paper", "quiz", "viva", "practical exam", "oral test",
		},
	},
	{
		category: model.CategoryAdminWork,
		keywords: []string{
			"meeting", "committee", "administrative", "coordination", "planning",
			"scheduling", "documentation", "report", "department work", "faculty meeting",
		},
	},
	{
		category: model.CategoryResearchWork,
		keywords: []string{
			"research", "publication", "paper", "journal", "conference", "project",
			"innovation", "development", "study", "investigation", "analysis",
		},
	},
}

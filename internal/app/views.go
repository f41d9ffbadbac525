package app

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/Nano1337/LeetcodeTrackerApp/internal/analytics"
	"github.com/Nano1337/LeetcodeTrackerApp/internal/domain"
)

// viewAnalytics prints the full progress report.
func (a *App) viewAnalytics() {
	report := a.tracker.Analytics()

	heading.Println("\nLeetCode Tracker Analytics:")
	fmt.Printf("Total problems: %d\n", report.TotalProblems)
	fmt.Printf("Completed problems: %d\n", report.CompletedProblems)
	fmt.Printf("Completion rate: %.2f%%\n", report.CompletionRate)
	fmt.Printf("Study streak: %d days\n", report.StudyStreak)
	fmt.Printf("Total study time: %d minutes\n", report.TotalStudyTime)

	menuItem.Println("\nCategory Progress:")
	printBreakdowns(report.ByCategory)

	menuItem.Println("\nDifficulty Progress:")
	printBreakdowns(report.ByDifficulty)
}

func printBreakdowns(buckets map[string]analytics.Breakdown) {
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b := buckets[k]
		fmt.Printf("%s: %d/%d (%.2f%%)\n", k, b.Completed, b.Total, b.Rate())
	}
}

// viewSummary prints weekly goal progress, recent activity and overall
// completion.
func (a *App) viewSummary() {
	heading.Println("\nSummary:")

	today := domain.Today()
	goal := a.tracker.Goals[domain.GoalProblemsPerWeek]
	fmt.Printf("Weekly Goal: %d/%d problems solved\n", a.tracker.SolvedThisWeek(today), goal)

	fmt.Println("\nRecent Activity:")
	for _, log := range a.tracker.RecentLogs(5) {
		fmt.Printf("%s: Solved %s (%d minutes)\n", log.Date, log.Problem, log.TimeTaken)
	}

	report := a.tracker.Analytics()
	fmt.Printf("\nOverall Progress: %d/%d (%.2f%%)\n",
		report.CompletedProblems, report.TotalProblems, report.CompletionRate)
}

// viewHistory prints the most recent study logs, newest first.
func (a *App) viewHistory() {
	heading.Println("\nProblem Solving History:")

	limit := a.cfg.HistoryLimit
	input := a.prompt(fmt.Sprintf("Enter the number of entries to view (press Enter for default %d): ", limit))
	if input != "" {
		n, err := strconv.Atoi(input)
		if err != nil || n <= 0 {
			errMsg.Printf("Invalid input. Using default limit of %d.\n", limit)
		} else {
			limit = n
		}
	}

	for _, log := range a.tracker.RecentLogs(limit) {
		fmt.Printf("%s: %s - %d minutes\n", log.Date, log.Problem, log.TimeTaken)
	}
}

// selectProblem walks the user through finding a problem by category or
// name and prints its details. Returns the selection, or nil when the user
// backed out.
func (a *App) selectProblem() *domain.Problem {
	categories := a.tracker.Categories()
	if len(categories) == 0 {
		warnMsg.Println("No problem categories found.")
		return nil
	}

	heading.Println("\nProblem Categories:")
	for i, c := range categories {
		fmt.Printf("%d. %s\n", i+1, c)
	}
	fmt.Printf("%d. Search by name\n", len(categories)+1)

	var matches []domain.Problem
	for {
		choice := a.promptInt("\nEnter the number of your choice: ")
		if choice >= 1 && choice <= len(categories) {
			matches = a.tracker.ProblemsInCategory(categories[choice-1])
			break
		}
		if choice == len(categories)+1 {
			matches = a.tracker.SearchByName(a.prompt("Enter search query: "))
			break
		}
		errMsg.Println("Invalid choice. Please try again.")
	}

	if len(matches) == 0 {
		warnMsg.Println("No matching problems found.")
		return nil
	}

	heading.Printf("\nFound %d problems:\n", len(matches))
	for i, p := range matches {
		fmt.Printf("%d. %s - %s\n", i+1, p.Name, statusColor(p).Sprint(p.Status))
	}

	var choice int
	for {
		choice = a.promptInt("\nEnter the number of the problem to view details (0 to exit): ")
		if choice >= 0 && choice <= len(matches) {
			break
		}
		errMsg.Println("Invalid choice. Please try again.")
	}
	if choice == 0 {
		return nil
	}

	selected := a.tracker.ProblemByName(matches[choice-1].Name)
	if selected == nil {
		return nil
	}
	fmt.Printf("\nProblem: %s\n", heading.Sprint(selected.Name))
	fmt.Printf("Category: %s\n", selected.Category)
	fmt.Printf("Difficulty: %s\n", selected.Difficulty)
	fmt.Printf("Status: %s\n", statusColor(*selected).Sprint(selected.Status))
	fmt.Printf("Link: %s\n", linkText.Sprint(selected.Link))
	fmt.Printf("Notes: %s\n", selected.Notes)
	return selected
}

package app

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Nano1337/LeetcodeTrackerApp/internal/domain"
	"github.com/Nano1337/LeetcodeTrackerApp/internal/solutions"
)

// studySession presents the day's plan, times the session against the wall
// clock, captures the write-up and logs the study event.
func (a *App) studySession() {
	next := a.tracker.NextProblem()
	if next == nil {
		okMsg.Println("\nAll catalog problems are completed. Nothing left to solve!")
		return
	}

	okMsg.Println("\nToday's study plan:")
	fmt.Printf("Next problem to solve: %s (%s)\n", heading.Sprint(next.Name), next.Category)
	fmt.Printf("Link: %s\n", linkText.Sprint(next.Link))

	due := a.tracker.DueToday(domain.Today())
	if len(due) > 0 {
		fmt.Println("\nProblems for spaced repetition:")
		for _, r := range due {
			fmt.Printf("- %s (%s) - Urgency: %s\n",
				titleText.Sprint(r.Problem.Name), r.Problem.Category,
				urgencyColor(r.Urgency).Sprint(r.Urgency))
		}
	} else {
		warnMsg.Println("\nNo problems for spaced repetition today.")
	}

	a.prompt("\nPress Enter to start the study timer...")
	start := time.Now()
	a.prompt("Press Enter when you're done studying...")
	minutes := int(time.Since(start).Minutes())
	fmt.Printf("\nYou studied for %s.\n", okMsg.Sprintf("%d minutes", minutes))

	fmt.Printf("\nLogging progress for: %s\n", heading.Sprint(next.Name))
	approach := a.prompt("Approach used (brief description): ")
	challenges := a.prompt("Challenges faced: ")

	code, err := solutions.CaptureEditor(a.cfg.Editor, "")
	if err != nil {
		errMsg.Printf("Could not capture solution: %v\n", err)
	}

	path, err := a.dir.Write("", next.Name, approach, challenges, code)
	if err != nil {
		errMsg.Printf("Could not write solution file: %v\n", err)
	} else {
		next.MarkdownFile = path
	}

	a.tracker.AddDailyLog(domain.DailyLog{
		Date:       domain.Today(),
		Problem:    next.Name,
		TimeTaken:  minutes,
		Approach:   approach,
		Challenges: challenges,
		Solution:   code,
	})

	if err == nil {
		okMsg.Printf("\nProgress logged successfully. Markdown file created at: %s\n", path)
	} else {
		okMsg.Println("\nProgress logged successfully.")
	}
}

// editProblem re-runs the write-up workflow for an existing problem chosen
// via search: new approach and challenges, editor seeded with the current
// write-up, status forced to Completed.
func (a *App) editProblem() {
	p := a.selectProblem()
	if p == nil {
		return
	}
	fmt.Printf("\nEditing problem: %s\n", heading.Sprint(p.Name))

	approach := a.prompt("Enter new approach (press Enter to keep current): ")
	if approach == "" {
		approach = p.Notes
	}
	challenges := a.prompt("Enter new challenges faced: ")

	var seed string
	if p.MarkdownFile != "" {
		if existing, err := a.dir.Read(p.MarkdownFile); err == nil {
			seed = existing
		}
	}
	code, err := solutions.CaptureEditor(a.cfg.Editor, seed)
	if err != nil {
		errMsg.Printf("Could not capture solution: %v\n", err)
		return
	}

	path, err := a.dir.Write(p.MarkdownFile, p.Name, approach, challenges, code)
	if err != nil {
		errMsg.Printf("Could not write solution file: %v\n", err)
		return
	}
	p.MarkdownFile = path
	p.Notes = approach
	p.Status = domain.StatusCompleted

	okMsg.Println("Problem updated successfully!")
}

// setGoals shows the current weekly goal and optionally replaces it.
func (a *App) setGoals() {
	heading.Println("\nCurrent Goals:")
	fmt.Printf("Problems per week: %d\n", a.tracker.Goals[domain.GoalProblemsPerWeek])

	input := a.prompt("Enter new weekly goal (press Enter to keep current): ")
	if input == "" {
		return
	}
	goal, err := strconv.Atoi(input)
	if err != nil {
		errMsg.Println("Invalid input. Goal not updated.")
		return
	}
	a.tracker.Goals[domain.GoalProblemsPerWeek] = goal
	okMsg.Println("Goal updated successfully!")
}

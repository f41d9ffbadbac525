package app

import (
	"fmt"
	"strconv"

	"github.com/Nano1337/LeetcodeTrackerApp/internal/domain"
	"github.com/Nano1337/LeetcodeTrackerApp/internal/solutions"
	"github.com/Nano1337/LeetcodeTrackerApp/internal/tracker"
)

// spacedRepetition runs the review workflow over today's due problems. The
// list shrinks as problems are handled; 'q' returns to the menu.
func (a *App) spacedRepetition() {
	due := a.tracker.DueToday(domain.Today())
	if len(due) == 0 {
		warnMsg.Println("No problems for spaced repetition today.")
		return
	}

	for len(due) > 0 {
		heading.Println("\nProblems for spaced repetition:")
		for i, r := range due {
			fmt.Printf("%d. %s (%s) - Urgency: %s\n",
				i+1, titleText.Sprint(r.Problem.Name), r.Problem.Category,
				urgencyColor(r.Urgency).Sprint(r.Urgency))
		}

		choice := a.prompt("\nEnter the number of the problem to review (or 'q' to quit): ")
		if choice == "q" || choice == "Q" {
			break
		}
		idx, err := strconv.Atoi(choice)
		if err != nil {
			errMsg.Println("Invalid input. Please enter a number or 'q'.")
			continue
		}
		if idx < 1 || idx > len(due) {
			errMsg.Println("Invalid choice. Please try again.")
			continue
		}

		selected := due[idx-1]
		a.reviewProblem(selected)
		due = append(due[:idx-1], due[idx:]...)
	}
}

// reviewProblem shows one due problem and applies the chosen action:
// mark reviewed, update the solution then mark reviewed, or skip.
func (a *App) reviewProblem(r tracker.Review) {
	p := a.tracker.ProblemByName(r.Problem.Name)
	if p == nil {
		return
	}

	fmt.Printf("\nReviewing problem: %s\n", heading.Sprint(p.Name))
	fmt.Printf("Category: %s\n", p.Category)
	fmt.Printf("Difficulty: %s\n", p.Difficulty)
	fmt.Printf("Link: %s\n", linkText.Sprint(p.Link))
	fmt.Printf("Current notes: %s\n", p.Notes)

	if p.MarkdownFile != "" {
		fmt.Printf("Solution file: %s\n", p.MarkdownFile)
		if a.prompt("Do you want to view the solution? (y/n): ") == "y" {
			content, err := a.dir.Read(p.MarkdownFile)
			if err != nil {
				errMsg.Printf("Error: unable to read file %s.\n", p.MarkdownFile)
			} else {
				heading.Println("\n--- Solution ---")
				fmt.Println(content)
				heading.Println("--- End of Solution ---")
			}
		}
	}

	action := a.prompt("\nChoose an action:\n1. Mark as reviewed\n2. Update solution and notes\n3. Skip\nEnter your choice (1-3): ")
	switch action {
	case "1":
		a.tracker.MarkReviewed(p.Name, r.ReviewDate, domain.Today())
		okMsg.Println("Problem marked as reviewed.")
	case "2":
		a.updateSolution(p)
		a.tracker.MarkReviewed(p.Name, r.ReviewDate, domain.Today())
		okMsg.Println("Solution updated and problem marked as reviewed.")
	case "3":
		warnMsg.Println("Problem skipped.")
	default:
		errMsg.Println("Invalid choice. Problem skipped.")
	}
}

// updateSolution re-captures approach, challenges and code for a problem
// and rewrites its write-up.
func (a *App) updateSolution(p *domain.Problem) {
	fmt.Printf("\nUpdating solution for: %s\n", heading.Sprint(p.Name))
	approach := a.prompt("Approach used (brief description): ")
	challenges := a.prompt("Challenges faced: ")

	code, err := solutions.CaptureEditor(a.cfg.Editor, "")
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
}

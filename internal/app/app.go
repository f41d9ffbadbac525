// Package app is the interactive terminal shell around the tracker. All
// blocking prompts live here; the scheduler, streak and analytics cores
// stay pure functions over explicit inputs.
package app

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/Nano1337/LeetcodeTrackerApp/internal/config"
	"github.com/Nano1337/LeetcodeTrackerApp/internal/domain"
	"github.com/Nano1337/LeetcodeTrackerApp/internal/schedule"
	"github.com/Nano1337/LeetcodeTrackerApp/internal/solutions"
	"github.com/Nano1337/LeetcodeTrackerApp/internal/store"
	"github.com/Nano1337/LeetcodeTrackerApp/internal/tracker"
)

var (
	heading   = color.New(color.FgCyan)
	menuItem  = color.New(color.FgYellow)
	errMsg    = color.New(color.FgRed)
	okMsg     = color.New(color.FgGreen)
	warnMsg   = color.New(color.FgYellow)
	linkText  = color.New(color.FgBlue)
	titleText = color.New(color.FgMagenta)
)

// App wires the tracker, store and solutions directory behind the menu
// loop.
type App struct {
	cfg     config.Config
	tracker *tracker.Tracker
	store   *store.Store
	dir     solutions.Dir
	in      *bufio.Reader
}

// New builds the shell over already-initialized collaborators.
func New(cfg config.Config, t *tracker.Tracker, st *store.Store) *App {
	return &App{
		cfg:     cfg,
		tracker: t,
		store:   st,
		dir:     solutions.NewDir(cfg.SolutionsDir),
		in:      bufio.NewReader(os.Stdin),
	}
}

// Run drives the menu loop until the user quits. Each action reloads the
// full state from the store before acting and saves after: a crude
// single-writer transaction across sequential invocations.
func (a *App) Run() error {
	for {
		a.printMenu()
		choice := a.prompt("Enter your choice (1-9): ")
		if choice == "9" {
			warnMsg.Println("Thank you for using LeetCode Tracker. Happy coding!")
			return nil
		}

		if err := a.store.Load(a.tracker); err != nil {
			return fmt.Errorf("failed to reload progress: %w", err)
		}

		switch choice {
		case "1":
			a.studySession()
		case "2":
			a.spacedRepetition()
		case "3":
			a.viewAnalytics()
		case "4":
			a.editProblem()
		case "5":
			a.setGoals()
		case "6":
			a.selectProblem()
		case "7":
			a.viewSummary()
		case "8":
			a.viewHistory()
		default:
			errMsg.Println("Invalid choice. Please try again.")
			continue
		}

		if err := a.store.Save(a.tracker); err != nil {
			return fmt.Errorf("failed to save progress: %w", err)
		}
	}
}

func (a *App) printMenu() {
	heading.Println("\nLeetCode Tracker Menu:")
	menuItem.Println("1. Start Study Session and Log Progress")
	menuItem.Println("2. Spaced Repetition")
	menuItem.Println("3. View Analytics")
	menuItem.Println("4. Edit Problem")
	menuItem.Println("5. Set Goals")
	menuItem.Println("6. Search Problems")
	menuItem.Println("7. View Summary")
	menuItem.Println("8. View History")
	errMsg.Println("9. Quit")
}

// prompt prints a label and reads one trimmed line. There is no timeout:
// user-input waits are full blocking pauses.
func (a *App) prompt(label string) string {
	fmt.Print(label)
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// promptInt reads an integer, re-prompting on invalid input.
func (a *App) promptInt(label string) int {
	for {
		n, err := strconv.Atoi(a.prompt(label))
		if err != nil {
			errMsg.Println("Invalid input. Please enter a number.")
			continue
		}
		return n
	}
}

func urgencyColor(u schedule.Urgency) *color.Color {
	switch u {
	case schedule.Overdue:
		return errMsg
	case schedule.Today:
		return warnMsg
	default:
		return okMsg
	}
}

func statusColor(p domain.Problem) *color.Color {
	if p.Completed() {
		return okMsg
	}
	return errMsg
}

package ui

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/jobanalysis/internal/app"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/loader"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
)

// Menu entries of the interactive session
const (
	MenuLoad    = "Load job file"
	MenuFilter  = "Filter jobs"
	MenuSort    = "Sort jobs"
	MenuDetails = "Show job details"
	MenuQuit    = "Quit"

	anyOption = "Any"

	titleAsc   = "Title A-Z"
	titleDesc  = "Title Z-A"
	postedAsc  = "Oldest first"
	postedDesc = "Newest first"
)

// Prompter asks the user for input
type Prompter interface {
	Select(label string, options []string) (string, error)
	Input(label string) (string, error)
}

// PtermPrompter prompts with pterm's interactive printers
type PtermPrompter struct{}

func (PtermPrompter) Select(label string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithDefaultText(label).
		WithOptions(options).
		WithMaxHeight(15).
		Show()
}

func (PtermPrompter) Input(label string) (string, error) {
	return pterm.DefaultInteractiveTextInput.Show(label)
}

// Interactive runs a menu loop; every choice becomes one command on the App
type Interactive struct {
	App         *app.App
	Term        *Terminal
	Prompt      Prompter
	MaxFileSize int64
	Progress    bool
}

// Run shows the menu until the user quits or a prompt fails
func (s *Interactive) Run() error {
	for {
		choice, err := s.Prompt.Select("What do you want to do?", []string{MenuLoad, MenuFilter, MenuSort, MenuDetails, MenuQuit})
		if err != nil {
			return err
		}

		switch choice {
		case MenuLoad:
			err = s.load()
		case MenuFilter:
			err = s.filter()
		case MenuSort:
			err = s.sort()
		case MenuDetails:
			err = s.details()
		case MenuQuit:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Interactive) load() error {
	path, err := s.Prompt.Input("Path to job file")
	if err != nil {
		return err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}

	data, err := loader.ReadFile(path, s.MaxFileSize, s.Progress)
	if err != nil {
		s.Term.Notify(err)
		return nil
	}

	s.App.Handle(app.Load{Data: data, Source: path}, s.Term)
	return nil
}

func (s *Interactive) filter() error {
	opts := s.App.Snapshot().Options

	typ, err := s.pick("Select Type", opts.Types)
	if err != nil {
		return err
	}
	level, err := s.pick("Select Level", opts.Levels)
	if err != nil {
		return err
	}
	skill, err := s.pick("Select Skill", opts.Skills)
	if err != nil {
		return err
	}

	s.App.Handle(app.Filter{Criteria: models.Criteria{Type: typ, Level: level, Skill: skill}}, s.Term)
	return nil
}

// pick offers values plus "Any", which selects nothing
func (s *Interactive) pick(label string, values []string) (string, error) {
	choice, err := s.Prompt.Select(label, append([]string{anyOption}, values...))
	if err != nil || choice == anyOption {
		return "", err
	}
	return choice, nil
}

func (s *Interactive) sort() error {
	title, err := s.Prompt.Select("Sort by title", []string{titleAsc, titleDesc})
	if err != nil {
		return err
	}
	posted, err := s.Prompt.Select("Sort by posted time", []string{postedDesc, postedAsc})
	if err != nil {
		return err
	}

	spec := models.SortSpec{Title: models.Ascending, Posted: models.Descending}
	if title == titleDesc {
		spec.Title = models.Descending
	}
	if posted == postedAsc {
		spec.Posted = models.Ascending
	}

	s.App.Handle(app.Sort{Spec: spec}, s.Term)
	return nil
}

func (s *Interactive) details() error {
	items := s.Term.Last().Items
	if len(items) == 0 {
		fmt.Fprintln(s.Term.out, app.EmptyMessage)
		return nil
	}

	labels := make([]string, len(items))
	byLabel := make(map[string]string, len(items))
	for i, item := range items {
		labels[i] = fmt.Sprintf("%d. %s - %s (%s)", i+1, item.Title, item.Type, item.Level)
		byLabel[labels[i]] = item.ID
	}

	choice, err := s.Prompt.Select("Select a job", labels)
	if err != nil {
		return err
	}

	s.App.Handle(app.Select{ID: byLabel[choice]}, s.Term)
	return nil
}

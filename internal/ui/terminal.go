package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/jobanalysis/internal/app"
	apperrors "github.com/fr4nk3nst1ner/jobanalysis/internal/errors"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/utils"
)

// Terminal renders job lists, details and errors to a terminal
type Terminal struct {
	out        io.Writer
	table      bool
	titleWidth int
	now        func() time.Time
	last       app.ListView
}

// TerminalOption configures a Terminal
type TerminalOption func(*Terminal)

// WithWriter sends output somewhere other than stdout
func WithWriter(w io.Writer) TerminalOption {
	return func(t *Terminal) { t.out = w }
}

// WithTable renders lists as a table instead of numbered lines
func WithTable(table bool) TerminalOption {
	return func(t *Terminal) { t.table = table }
}

// WithTitleWidth truncates titles in lists to width characters; 0 disables truncation
func WithTitleWidth(width int) TerminalOption {
	return func(t *Terminal) { t.titleWidth = width }
}

// WithNow replaces time.Now for the "loaded ... ago" line
func WithNow(now func() time.Time) TerminalOption {
	return func(t *Terminal) { t.now = now }
}

// NewTerminal creates a terminal presenter writing to stdout
func NewTerminal(opts ...TerminalOption) *Terminal {
	t := &Terminal{
		out: os.Stdout,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Last returns the most recently rendered list
func (t *Terminal) Last() app.ListView {
	return t.last
}

// Render prints a job list
func (t *Terminal) Render(view app.ListView) {
	t.last = view

	t.Warnings(view.Warnings)

	if view.Empty() {
		fmt.Fprintln(t.out, app.EmptyMessage)
		return
	}

	if t.table {
		t.renderTable(view)
	} else {
		for i, item := range view.Items {
			fmt.Fprintf(t.out, "%3d. %s - %s (%s)  %s\n",
				i+1,
				t.title(item.Title),
				item.Type,
				item.Level,
				ColorizePosted(item.Posted))
		}
	}

	fmt.Fprintln(t.out, t.summary(view))
}

func (t *Terminal) renderTable(view app.ListView) {
	data := pterm.TableData{{"#", "Title", "Type", "Level", "Skill", "Posted"}}
	for i, item := range view.Items {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			t.title(item.Title),
			item.Type,
			item.Level,
			item.Skill,
			ColorizePosted(item.Posted),
		})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		// fall back to plain lines rather than dropping the list
		for _, row := range data[1:] {
			fmt.Fprintln(t.out, strings.Join(row, "  "))
		}
		return
	}
	fmt.Fprintln(t.out, out)
}

func (t *Terminal) summary(view app.ListView) string {
	s := fmt.Sprintf("\nShowing %s of %s jobs", humanize.Comma(int64(len(view.Items))), humanize.Comma(int64(view.Total)))
	if view.Source != "" {
		s += " from " + view.Source
	}
	if !view.LoadedAt.IsZero() {
		s += fmt.Sprintf(" (loaded %s)", humanize.RelTime(view.LoadedAt, t.now(), "ago", "from now"))
	}
	return s
}

func (t *Terminal) title(title string) string {
	if t.titleWidth <= 0 {
		return title
	}
	return utils.TruncateString(title, t.titleWidth)
}

// ShowDetail prints the full details of one job in a box
func (t *Terminal) ShowDetail(d models.Details) {
	body := strings.Join([]string{
		pterm.Bold.Sprint(d.Title),
		"",
		"Type: " + d.Type,
		"Level: " + d.Level,
		"Skill: " + d.Skill,
		"Posted: " + d.Posted,
		"",
		"Details: " + utils.PlainText(d.Detail),
	}, "\n")

	fmt.Fprintln(t.out, pterm.DefaultBox.Sprint(body))
}

// Notify prints an error. Rejected files get the same message the upload form shows.
func (t *Terminal) Notify(err error) {
	if err == nil {
		return
	}
	switch apperrors.TypeOf(err) {
	case apperrors.ErrTypeInvalidFile, apperrors.ErrTypeMalformedRecord:
		fmt.Fprint(t.out, pterm.Error.Sprintln(app.InvalidFileMessage))
		fmt.Fprintln(t.out, "  "+err.Error())
	default:
		fmt.Fprint(t.out, pterm.Error.Sprintln(err.Error()))
	}
}

// Warnings prints one warning line per degraded posting
func (t *Terminal) Warnings(warnings []string) {
	for _, w := range warnings {
		fmt.Fprint(t.out, pterm.Warning.Sprintln(w))
	}
}

// Package tui implements the interactive catalog browser following
// the Elm architecture. It renders a keyword box, two per-person
// category filter chips and the live digest result.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pantrykit/pantry-cli/internal/core/domain"
	"github.com/pantrykit/pantry-cli/internal/core/ports/driving"
)

// resultsMsg carries a completed digest.
type resultsMsg struct {
	foods []*domain.Food
}

// errMsg carries a failed digest.
type errMsg struct {
	err error
}

// App is the catalog browser model. It implements tea.Model.
type App struct {
	catalog driving.CatalogService
	styles  *Styles
	schema  domain.Schema

	// input is the keyword box; every keystroke triggers a digest.
	input textinput.Model

	// catSel holds the per-person category filter: 0 is "no filter",
	// 1..4 index into Categories().
	catSel [2]int

	// sortSel holds the sort field: 0 is "catalog order", otherwise
	// an index into the schema's sortable fields.
	sortSel int

	foods []*domain.Food
	err   error

	width  int
	height int
	ready  bool
}

// NewApp creates the browser around a catalog service.
func NewApp(catalog driving.CatalogService) *App {
	input := textinput.New()
	input.Placeholder = "type to filter..."
	input.Prompt = "/ "
	input.Focus()

	return &App{
		catalog: catalog,
		styles:  DefaultStyles(),
		schema:  catalog.Schema(),
		input:   input,
		width:   80,
		height:  24,
	}
}

// Init starts the cursor blink and runs the initial (unfiltered) digest.
func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.digestCmd())
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case resultsMsg:
		a.foods = msg.foods
		a.err = nil
		return a, nil

	case errMsg:
		a.err = msg.err
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "esc":
			if a.hasFilters() {
				a.input.SetValue("")
				a.catSel = [2]int{}
				a.sortSel = 0
				return a, a.digestCmd()
			}
			return a, tea.Quit
		case "tab":
			a.catSel[0] = (a.catSel[0] + 1) % (len(domain.Categories()) + 1)
			return a, a.digestCmd()
		case "shift+tab":
			a.catSel[1] = (a.catSel[1] + 1) % (len(domain.Categories()) + 1)
			return a, a.digestCmd()
		case "ctrl+s":
			a.sortSel = (a.sortSel + 1) % (len(a.schema.SortableFields()) + 1)
			return a, a.digestCmd()
		}
	}

	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if a.input.Value() != before {
		return a, tea.Batch(cmd, a.digestCmd())
	}
	return a, cmd
}

// hasFilters reports whether any filter or sort is active.
func (a *App) hasFilters() bool {
	return a.input.Value() != "" || a.catSel[0] != 0 || a.catSel[1] != 0 || a.sortSel != 0
}

// rawQuery assembles the untrusted query shape from the current state.
func (a *App) rawQuery() domain.RawQuery {
	raw := domain.RawQuery{}
	if v := a.input.Value(); v != "" {
		raw[domain.QueryKeySearch] = v
	}
	fields := a.schema.CategoryFields()
	cats := domain.Categories()
	for i, sel := range a.catSel {
		if sel > 0 {
			raw[fields[i]] = string(cats[sel-1])
		}
	}
	if a.sortSel > 0 {
		raw[domain.QueryKeySortBy] = a.schema.SortableFields()[a.sortSel-1]
	}
	return raw
}

// digestCmd runs the digest pipeline off the update loop.
func (a *App) digestCmd() tea.Cmd {
	raw := a.rawQuery()
	return func() tea.Msg {
		out, err := a.catalog.Digest(context.Background(), raw)
		if err != nil {
			return errMsg{err: err}
		}
		return resultsMsg{foods: out.Foods()}
	}
}

// filterLabel renders one person's filter chip.
func (a *App) filterLabel(person string, sel int) string {
	if sel == 0 {
		return fmt.Sprintf("%s: all", person)
	}
	return fmt.Sprintf("%s: %s", person, domain.Categories()[sel-1])
}

// View renders the browser.
func (a *App) View() string {
	var b strings.Builder

	people := a.schema.People()
	fields := a.schema.CategoryFields()

	b.WriteString(a.styles.Title.Render(fmt.Sprintf("Pantry - %d food(s)", len(a.foods))))
	b.WriteString("\n")
	b.WriteString(a.styles.Input.Render(a.input.View()))
	b.WriteString("\n")

	sortLabel := "catalog order"
	if a.sortSel > 0 {
		sortLabel = "sort: " + a.schema.SortableFields()[a.sortSel-1]
	}
	b.WriteString(a.styles.Filter.Render(fmt.Sprintf("%s  %s  %s",
		a.filterLabel(people[0], a.catSel[0]),
		a.filterLabel(people[1], a.catSel[1]),
		sortLabel)))
	b.WriteString("\n\n")

	if a.err != nil {
		b.WriteString(a.styles.Error.Render(fmt.Sprintf("error: %v", a.err)))
		b.WriteString("\n")
	}

	// Leave room for header, input, filters and the status bar.
	maxRows := a.height - 8
	if maxRows < 1 {
		maxRows = 1
	}
	for i, f := range a.foods {
		if i >= maxRows {
			b.WriteString(a.styles.RowAlias.Render(fmt.Sprintf("  ... %d more", len(a.foods)-maxRows)))
			b.WriteString("\n")
			break
		}
		name := f.NameEn()
		if f.NameNative() != f.NameEn() {
			name = fmt.Sprintf("%s / %s", f.NameEn(), f.NameNative())
		}
		cat1, _ := f.Category(fields[0])
		cat2, _ := f.Category(fields[1])
		b.WriteString(a.styles.Row.Render(fmt.Sprintf("  %s", name)))
		b.WriteString(a.styles.RowAlias.Render(fmt.Sprintf("  (%s)  %s  %s/%s", f.Alias(), f.Serving(), cat1, cat2)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Status.Render(
		"tab/shift+tab cycle categories - ctrl+s cycle sort - esc clear/quit"))
	return b.String()
}

// Package tui provides the interactive terminal UI for browsing the vault.
package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
)

// viewType identifies the active view.
type viewType int

const (
	viewCategories viewType = iota
	viewScripts
	viewContent
)

// categoryEntry is one row in the categories view.
type categoryEntry struct {
	name  string
	count int
}

// App is the vault browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *Styles
	keys   *KeyMap

	currentView viewType

	categories []categoryEntry
	scripts    []domain.Script
	selected   int

	category string
	script   domain.Script

	filter    textinput.Model
	filtering bool

	content viewport.Model

	err    error
	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	filter := textinput.New()
	filter.Placeholder = "Filter scripts..."
	filter.CharLimit = 100
	filter.Width = 40

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      DefaultStyles(),
		keys:        DefaultKeyMap(),
		currentView: viewCategories,
		filter:      filter,
		content:     viewport.New(80, 20),
	}, nil
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init loads the category summary.
func (a *App) Init() tea.Cmd {
	return a.loadCategories()
}

func (a *App) loadCategories() tea.Cmd {
	return func() tea.Msg {
		counts, err := a.ports.Vault.Categories(a.ctx)
		return categoriesLoaded{Counts: counts, Err: err}
	}
}

func (a *App) loadScripts(category string) tea.Cmd {
	return func() tea.Msg {
		scripts, err := a.ports.Vault.List(a.ctx, category)
		return scriptsLoaded{Category: category, Scripts: scripts, Err: err}
	}
}

func (a *App) loadContent(script domain.Script) tea.Cmd {
	return func() tea.Msg {
		content, err := a.ports.Vault.Content(a.ctx, script.ID)
		return contentLoaded{Script: script, Content: string(content), Err: err}
	}
}

// Update handles messages and key presses.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.content.Width = msg.Width
		a.content.Height = msg.Height - 4
		a.ready = true
		return a, nil

	case categoriesLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.err = nil
		a.categories = sortedCategories(msg.Counts)
		a.clampSelection(len(a.categories))
		return a, nil

	case scriptsLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.err = nil
		a.category = msg.Category
		a.scripts = msg.Scripts
		a.selected = 0
		a.currentView = viewScripts
		return a, nil

	case contentLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.err = nil
		a.script = msg.Script
		a.content.SetContent(msg.Content)
		a.content.GotoTop()
		a.currentView = viewContent
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.filtering {
		return a.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Back):
		switch a.currentView {
		case viewContent:
			a.currentView = viewScripts
		case viewScripts:
			a.currentView = viewCategories
			a.selected = 0
			a.filter.SetValue("")
			return a, a.loadCategories()
		}
		return a, nil

	case key.Matches(msg, a.keys.Up):
		if a.currentView == viewContent {
			a.content.ScrollUp(1)
			return a, nil
		}
		if a.selected > 0 {
			a.selected--
		}
		return a, nil

	case key.Matches(msg, a.keys.Down):
		if a.currentView == viewContent {
			a.content.ScrollDown(1)
			return a, nil
		}
		if a.selected < a.listLen()-1 {
			a.selected++
		}
		return a, nil

	case key.Matches(msg, a.keys.Filter):
		if a.currentView == viewScripts {
			a.filtering = true
			a.filter.Focus()
			return a, textinput.Blink
		}
		return a, nil

	case key.Matches(msg, a.keys.Select):
		return a.handleSelect()
	}

	return a, nil
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		a.filtering = false
		a.filter.Blur()
		a.clampSelection(len(a.visibleScripts()))
		return a, nil
	}

	var cmd tea.Cmd
	a.filter, cmd = a.filter.Update(msg)
	a.selected = 0
	return a, cmd
}

func (a *App) handleSelect() (tea.Model, tea.Cmd) {
	switch a.currentView {
	case viewCategories:
		if a.selected < len(a.categories) {
			return a, a.loadScripts(a.categories[a.selected].name)
		}
	case viewScripts:
		visible := a.visibleScripts()
		if a.selected < len(visible) {
			return a, a.loadContent(visible[a.selected])
		}
	}
	return a, nil
}

func (a *App) listLen() int {
	switch a.currentView {
	case viewCategories:
		return len(a.categories)
	case viewScripts:
		return len(a.visibleScripts())
	default:
		return 0
	}
}

func (a *App) clampSelection(n int) {
	if a.selected >= n {
		a.selected = n - 1
	}
	if a.selected < 0 {
		a.selected = 0
	}
}

// visibleScripts applies the current filter to the loaded scripts.
func (a *App) visibleScripts() []domain.Script {
	query := strings.ToLower(a.filter.Value())
	if query == "" {
		return a.scripts
	}
	var out []domain.Script
	for _, s := range a.scripts {
		if strings.Contains(strings.ToLower(s.Name), query) {
			out = append(out, s)
		}
	}
	return out
}

// View renders the active view.
func (a *App) View() string {
	if a.err != nil {
		return a.styles.Error.Render(fmt.Sprintf("Error: %v", a.err)) +
			"\n" + a.styles.Status.Render("esc: back  q: quit")
	}

	switch a.currentView {
	case viewScripts:
		return a.scriptsView()
	case viewContent:
		return a.contentView()
	default:
		return a.categoriesView()
	}
}

func (a *App) categoriesView() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("ScriptVault") + "\n")

	if len(a.categories) == 0 {
		b.WriteString(a.styles.Muted.Render("No scripts stored.") + "\n")
	}
	for i, cat := range a.categories {
		label := cat.name
		if label == "" {
			label = "(uncategorised)"
		}
		line := fmt.Sprintf("%-24s %d", label, cat.count)
		if i == a.selected {
			b.WriteString(a.styles.Selected.Render(line) + "\n")
		} else {
			b.WriteString(a.styles.Item.Render(line) + "\n")
		}
	}

	b.WriteString(a.styles.Status.Render("enter: open  q: quit"))
	return b.String()
}

func (a *App) scriptsView() string {
	var b strings.Builder
	title := a.category
	if title == "" {
		title = "(uncategorised)"
	}
	b.WriteString(a.styles.Title.Render(title) + "\n")

	if a.filtering || a.filter.Value() != "" {
		b.WriteString(a.filter.View() + "\n\n")
	}

	visible := a.visibleScripts()
	if len(visible) == 0 {
		b.WriteString(a.styles.Muted.Render("No scripts.") + "\n")
	}
	for i := range visible {
		if i == a.selected {
			b.WriteString(a.styles.Selected.Render(visible[i].Name) + "\n")
		} else {
			b.WriteString(a.styles.Item.Render(visible[i].Name) + "\n")
		}
	}

	b.WriteString(a.styles.Status.Render("enter: view  /: filter  esc: back  q: quit"))
	return b.String()
}

func (a *App) contentView() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render(a.script.Name) + "\n")
	b.WriteString(a.styles.Muted.Render(a.script.URI) + "\n\n")
	b.WriteString(a.content.View() + "\n")
	b.WriteString(a.styles.Status.Render("↑/↓: scroll  esc: back  q: quit"))
	return b.String()
}

// sortedCategories flattens the count map into sorted rows.
func sortedCategories(counts map[string]int) []categoryEntry {
	entries := make([]categoryEntry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, categoryEntry{name: name, count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].name < entries[j].name
	})
	return entries
}

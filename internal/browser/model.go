package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/ptable/internal/dataset"
)

// allCategories is the filter index that shows every element.
const allCategories = -1

// elementItem wraps an Element for use with bubbles/list
type elementItem struct {
	element dataset.Element
	color   string
}

func (i elementItem) FilterValue() string {
	return i.element.Symbol + " " + i.element.Name
}

func (i elementItem) Title() string {
	return fmt.Sprintf("%s %3d  %-3s %s", Swatch(i.color), i.element.Number, i.element.Symbol, i.element.Name)
}

func (i elementItem) Description() string {
	parts := []string{
		fmt.Sprintf("period %d", i.element.Period),
		fmt.Sprintf("group %d", i.element.Group),
		i.element.Category,
	}
	if mass := i.element.AtomicMass.String(); mass != "" {
		parts = append(parts, mass)
	}
	return "      " + strings.Join(parts, " · ")
}

// Model is the element browser state
type Model struct {
	elements   []dataset.Element
	theme      dataset.Theme
	categories []string
	filter     int

	List       list.Model
	ShowDetail bool

	Width  int
	Height int
	Help   help.Model
	Keys   keyMap
}

// New creates a browser over elements. Category swatches use theme colors.
func New(elements []dataset.Element, theme dataset.Theme) Model {
	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, MinTerminalWidth, 20)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)

	m := Model{
		elements:   elements,
		theme:      theme,
		categories: dataset.Categories(elements),
		filter:     allCategories,
		List:       l,
		Help:       help.New(),
		Keys:       newKeyMap(),
	}
	m.applyFilter()
	return m
}

// Category returns the active category filter, or "" when all are shown.
func (m Model) Category() string {
	if m.filter == allCategories {
		return ""
	}
	return m.categories[m.filter]
}

// Selected returns the highlighted element.
func (m Model) Selected() (dataset.Element, bool) {
	item, ok := m.List.SelectedItem().(elementItem)
	if !ok {
		return dataset.Element{}, false
	}
	return item.element, true
}

func (m *Model) applyFilter() {
	category := m.Category()
	items := make([]list.Item, 0, len(m.elements))
	for _, el := range m.elements {
		if category != "" && el.Category != category {
			continue
		}
		items = append(items, elementItem{element: el, color: m.theme.CategoryColor(el.Category)})
	}
	m.List.SetItems(items)
	m.List.ResetSelected()
}

// cycle moves the category filter by step, wrapping through "all".
func (m *Model) cycle(step int) {
	n := len(m.categories) + 1
	pos := (m.filter + 1 + step + n) % n
	m.filter = pos - 1
	m.ShowDetail = false
	m.applyFilter()
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		m.List.SetSize(min(msg.Width, MaxContentWidth)-2, max(msg.Height-10, 5))
		return m, nil

	case tea.KeyMsg:
		// While typing a filter query every key belongs to the list.
		if m.List.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.Keys.NextCategory):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.Keys.PrevCategory):
			m.cycle(-1)
			return m, nil
		case key.Matches(msg, m.Keys.Details):
			if _, ok := m.Selected(); ok {
				m.ShowDetail = !m.ShowDetail
			}
			return m, nil
		case key.Matches(msg, m.Keys.Help):
			m.Help.ShowAll = !m.Help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(headerContent()))
	b.WriteString("\n")

	category := m.Category()
	if category == "" {
		category = "All categories"
	}
	b.WriteString(fmt.Sprintf(" %s %s\n\n",
		FilterStyle.Render(category),
		SubtleStyle.Render(fmt.Sprintf("(%d elements)", len(m.List.Items()))),
	))

	if el, ok := m.Selected(); ok && m.ShowDetail {
		detail := Swatch(m.theme.CategoryColor(el.Category)) + "\n" + el.FormatDetailed()
		b.WriteString(DetailBoxStyle.Render(strings.TrimRight(detail, "\n")))
	} else if len(m.List.Items()) == 0 {
		b.WriteString(SubtleStyle.Render(" No elements loaded"))
	} else {
		b.WriteString(m.List.View())
	}

	b.WriteString(HelpStyle.Render(m.Help.View(m.Keys)))
	return lipgloss.NewStyle().MaxWidth(max(m.Width, MinTerminalWidth)).Render(b.String())
}

// Run starts the browser in the alternate screen and blocks until it exits.
func Run(elements []dataset.Element, theme dataset.Theme) error {
	if _, err := tea.NewProgram(New(elements, theme), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}

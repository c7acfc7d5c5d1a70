package tui

import (
	"context"
	"errors"
	"strings"

	"skill-manager/internal/store"
	"skill-manager/internal/usecase"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type tab int

const (
	tabEmployees tab = iota
	tabProjects
	tabSkills
)

var tabs = []tab{tabEmployees, tabProjects, tabSkills}

func (t tab) String() string {
	switch t {
	case tabProjects:
		return "Projects"
	case tabSkills:
		return "Skills"
	default:
		return "Employees"
	}
}

func (t tab) hotkey() string {
	return "[" + t.String()[:1] + "]" + t.String()[1:]
}

func (t tab) prompt() string {
	switch t {
	case tabProjects:
		return "New Project: "
	case tabSkills:
		return "New Skill: "
	default:
		return "New Employee: "
	}
}

var errEmptyFirstName = errors.New("empty first name")

// Stores is what the browser reads from and adds to.
type Stores struct {
	Skills    usecase.SkillUsecase
	Projects  usecase.ProjectUsecase
	Employees usecase.EmployeeUsecase
}

type model struct {
	ctx    context.Context
	stores Stores

	tab       tab
	inputMode bool
	input     textinput.Model

	rows []string
	err  error

	width  int
	height int
}

// New returns the browser model. It opens on the employees tab.
func New(ctx context.Context, stores Stores) tea.Model {
	in := textinput.New()
	in.CharLimit = 256

	m := model{ctx: ctx, stores: stores, input: in}
	m.reload()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.inputMode {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyRunes:
	default:
		return m, nil
	}

	switch msg.String() {
	case "e":
		m.switchTab(tabEmployees)
	case "p":
		m.switchTab(tabProjects)
	case "s":
		m.switchTab(tabSkills)
	case "+":
		m.inputMode = true
		m.err = nil
		m.input.Reset()
		m.input.Prompt = m.tab.prompt()
		cmd := m.input.Focus()
		return m, cmd
	}
	return m, nil
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.leaveInput()
		return m, nil
	case tea.KeyEnter:
		m.err = m.submit(m.input.Value())
		m.leaveInput()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) switchTab(t tab) {
	m.tab = t
	m.err = nil
	m.reload()
}

func (m *model) leaveInput() {
	m.inputMode = false
	m.input.Blur()
	m.input.Reset()
}

func (m model) submit(value string) error {
	switch m.tab {
	case tabSkills:
		_, err := m.stores.Skills.AddSkill(m.ctx, usecase.AddSkillInput{Label: value})
		return err
	case tabProjects:
		_, err := m.stores.Projects.AddProject(m.ctx, usecase.AddProjectInput{Label: value})
		return err
	default:
		first, last, ok := splitName(value)
		if !ok {
			return errEmptyFirstName
		}
		_, err := m.stores.Employees.AddEmployee(m.ctx, usecase.AddEmployeeInput{FirstName: first, LastName: last})
		return err
	}
}

// splitName takes the first word as the first name and joins the rest
// into the last name.
func splitName(s string) (string, string, bool) {
	words := strings.Fields(s)
	if len(words) == 0 {
		return "", "", false
	}
	return words[0], strings.Join(words[1:], " "), true
}

func (m *model) reload() {
	var rows []string
	switch m.tab {
	case tabSkills:
		found, err := m.stores.Skills.FindSkills(m.ctx, store.All)
		if err != nil {
			m.err = err
			return
		}
		for _, s := range found {
			rows = append(rows, s.Label)
		}
	case tabProjects:
		found, err := m.stores.Projects.FindProjects(m.ctx, store.All)
		if err != nil {
			m.err = err
			return
		}
		for _, p := range found {
			rows = append(rows, p.Label)
		}
	default:
		found, err := m.stores.Employees.FindEmployees(m.ctx, store.All)
		if err != nil {
			m.err = err
			return
		}
		for _, e := range found {
			rows = append(rows, e.FullName())
		}
	}
	m.rows = rows
}

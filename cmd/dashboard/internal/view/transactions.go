package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/api"
	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/filter"
	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/inputmask"
	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/pager"
	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/record"
)

type txState int

const (
	txStateBrowse txState = iota
	txStateFilter
)

var (
	statusCycle = []record.Status{"", record.StatusSuccessful, record.StatusPending, record.StatusFailed, record.StatusRefunded}
	typeCycle   = []record.PaymentType{"", record.PaymentOneTime, record.PaymentSubscription}
)

type TransactionsModel struct {
	CommonModel
	client *api.Client

	state      txState
	table      table.Model
	records    []record.Record
	pagination pager.State
	filter     filter.State
	form       *huh.Form

	statusIdx int
	typeIdx   int

	loading bool
	err     error

	// Form bindings
	formStart  string
	formEnd    string
	formMin    string
	formMax    string
	formSearch string
}

func NewTransactionsModel(client *api.Client) TransactionsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Status", Width: 12},
		{Title: "Amount", Width: 14},
		{Title: "Customer", Width: 28},
		{Title: "Description", Width: 34},
		{Title: "Method", Width: 18},
		{Title: "Type", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return TransactionsModel{
		client:     client,
		table:      t,
		pagination: pager.New(),
		loading:    true,
	}
}

func (m TransactionsModel) Title() string { return "Transactions" }

func (m TransactionsModel) ShortHelp() string {
	if m.state == txStateFilter {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | ←/→: page | f: filters | s: status | p: type | r: refresh"
}

func (m TransactionsModel) Init() tea.Cmd {
	return m.loadPageCmd(1)
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadPageMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.records = msg.page.Records
		m.pagination = msg.page.Pagination
		m.refreshTable()
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case txStateBrowse:
		return m.updateBrowse(msg)
	case txStateFilter:
		return m.updateFilter(msg)
	}

	return m, nil
}

func (m TransactionsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.client.InvalidateCache()
			m.loading = true
			return m, m.loadPageCmd(m.pagination.CurrentPage)
		case "left":
			if page, ok := m.pagination.Prev(); ok {
				m.loading = true
				return m, m.loadPageCmd(page)
			}
			return m, nil
		case "right":
			if page, ok := m.pagination.Next(); ok {
				m.loading = true
				return m, m.loadPageCmd(page)
			}
			return m, nil
		case "s":
			m.statusIdx = (m.statusIdx + 1) % len(statusCycle)
			m.filter.Status = statusCycle[m.statusIdx]
			m.refreshTable()
			return m, nil
		case "p":
			m.typeIdx = (m.typeIdx + 1) % len(typeCycle)
			m.filter.PaymentType = typeCycle[m.typeIdx]
			m.refreshTable()
			return m, nil
		case "f":
			return m.enterFilterMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m TransactionsModel) enterFilterMode() (tea.Model, tea.Cmd) {
	m.formStart = ""
	m.formEnd = ""
	m.formMin = ""
	m.formMax = ""
	m.formSearch = m.filter.Search
	if m.filter.StartDate != nil {
		m.formStart = FormatDate(*m.filter.StartDate)
	}
	if m.filter.EndDate != nil {
		m.formEnd = FormatDate(*m.filter.EndDate)
	}
	if m.filter.MinAmount != nil {
		m.formMin = inputmask.FormatAmount(FormatAmount(*m.filter.MinAmount))
	}
	if m.filter.MaxAmount != nil {
		m.formMax = inputmask.FormatAmount(FormatAmount(*m.filter.MaxAmount))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("start").
				Title("Start Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.formStart).
				Validate(validateDate),

			huh.NewInput().
				Key("end").
				Title("End Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.formEnd).
				Validate(validateDate),

			huh.NewInput().
				Key("min").
				Title("Min Amount").
				Placeholder("0.00").
				Value(&m.formMin).
				Validate(validateAmount),

			huh.NewInput().
				Key("max").
				Title("Max Amount").
				Placeholder("0.00").
				Value(&m.formMax).
				Validate(validateAmount),

			huh.NewInput().
				Key("search").
				Title("Search").
				Description("Customer email, name or transaction id").
				Value(&m.formSearch),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = txStateFilter
	m.table.Blur()
	return m, m.form.Init()
}

func validateDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateAmount(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := filter.MinorUnits(inputmask.ParseAmount(strings.TrimSpace(s))); err != nil {
		return fmt.Errorf("invalid amount")
	}
	return nil
}

func (m TransactionsModel) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = txStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.applyForm()
	m.state = txStateBrowse
	m.form = nil
	m.table.Focus()
	m.refreshTable()
	return m, nil
}

func (m *TransactionsModel) applyForm() {
	m.filter.StartDate = parseFormDate(m.formStart)
	m.filter.EndDate = parseFormDate(m.formEnd)
	m.filter.MinAmount = parseFormAmount(m.formMin)
	m.filter.MaxAmount = parseFormAmount(m.formMax)
	m.filter.Search = strings.TrimSpace(m.formSearch)
}

func parseFormDate(s string) *time.Time {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &t
}

func parseFormAmount(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	minor, err := filter.MinorUnits(inputmask.ParseAmount(s))
	if err != nil {
		return nil
	}
	return &minor
}

func (m *TransactionsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.records))
	for _, r := range m.records {
		if !m.filter.Matches(r) {
			continue
		}

		rows = append(rows, table.Row{
			FormatDate(r.CreatedAt),
			string(r.Status),
			FormatAmount(r.Amount) + " " + r.Currency,
			r.CustomerEmail,
			r.Description,
			record.MethodLabel(r.PaymentMethod),
			string(record.Classify(r)),
		})
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func (m TransactionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %s", errorMessage(m.err)))
	}

	header := fmt.Sprintf(
		"Filter: [s] Status: %s | [p] Type: %s | [f] more filters",
		activeStyle(cycleLabel(string(m.filter.Status))),
		activeStyle(cycleLabel(string(m.filter.PaymentType))),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		m.paginationView(),
	)

	if m.state == txStateFilter && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Filters\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m TransactionsModel) paginationView() string {
	summary := fmt.Sprintf("%d transactions", m.pagination.TotalItems)

	if !m.pagination.Interactive() {
		return lipgloss.NewStyle().Faint(true).Render(summary)
	}

	var parts []string
	for _, p := range pager.VisiblePages(m.pagination.CurrentPage, m.pagination.TotalPages) {
		switch {
		case p == pager.Ellipsis:
			parts = append(parts, "…")
		case p == m.pagination.CurrentPage:
			parts = append(parts, activeStyle(fmt.Sprintf("[%d]", p)))
		default:
			parts = append(parts, fmt.Sprintf("%d", p))
		}
	}

	return lipgloss.NewStyle().Faint(true).Render(summary) + "  " + strings.Join(parts, " ")
}

func cycleLabel(s string) string {
	if s == "" {
		return "All"
	}
	return s
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func errorMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}

	return "unable to connect to the sandbox API"
}

// Messages

type loadPageMsg struct {
	page *api.TransactionPage
	err  error
}

func (m TransactionsModel) loadPageCmd(page int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		tp, err := m.client.ListTransactions(ctx, page, pager.DefaultPageSize)
		return loadPageMsg{page: tp, err: err}
	}
}

package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/divo662/transactlab-payment-sandbox-sub004/cmd/dashboard/internal/view"
	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/api"
	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/config"
	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/export"
)

type model struct {
	client        *api.Client
	exportService *export.Service

	currentView View

	transactionsView view.TransactionsModel
	exportView       view.ExportModel
}

type View int

const (
	ViewMenu         View = 0
	ViewTransactions View = 1
	ViewExport       View = 2
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client := api.New(api.Config{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.API.Token,
		Timeout: cfg.API.Timeout,
	})
	exportSvc := export.NewService(client)

	return model{
		client:           client,
		exportService:    exportSvc,
		currentView:      ViewMenu,
		transactionsView: view.NewTransactionsModel(client),
		exportView:       view.NewExportModel(exportSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.client)

				return m, m.transactionsView.Init()
			case "2":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"TransactLab Dashboard\n\n" +
				"1. Browse Transactions\n" +
				"2. Export Transactions (CSV)\n\n" +
				"q. Quit",
		)
	case ViewTransactions:
		return m.transactionsView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run dashboard", "error", err)
		os.Exit(1)
	}
}

package view

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

const apiTimeout = 10 * time.Second

// ApiCtx returns a context with a standard timeout for remote API calls.
func ApiCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), apiTimeout)
}

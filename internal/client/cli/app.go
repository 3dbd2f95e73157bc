// Package cli implements the interactive terminal client: a small REPL with
// register, login, and whoami commands against the Gatekeeper API.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/gatekeeper/internal/client/api"
	"github.com/dmitrijs2005/gatekeeper/internal/client/config"
)

type App struct {
	config    *config.Config
	api       *api.Client
	reader    *bufio.Reader
	token     string
	userEmail string
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.New(c.ServerEndpointAddr),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

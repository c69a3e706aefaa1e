package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/shivtchandra/CivicWatch/internal/client/api"
	"github.com/shivtchandra/CivicWatch/internal/client/config"
	"github.com/shivtchandra/CivicWatch/internal/client/models"
	"github.com/shivtchandra/CivicWatch/internal/client/session"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	api     *api.Client
	session *session.Manager
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	repos, err := InitDatabase(ctx, c.LocalDBPath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient := api.New(c.ServerBaseURL, c.RequestTimeout)
	sm := session.NewManager(apiClient, repos.Metadata)

	return &App{
		config:  c,
		api:     apiClient,
		session: sm,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	if err := a.session.Resolve(ctx); err != nil {
		log.Printf("could not resolve session: %s", err.Error())
	}
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Status() == session.StatusAuthenticated
}

func (a *App) profile() *models.Profile {
	return a.session.Profile()
}

func (a *App) profileCity() string {
	if p := a.profile(); p != nil {
		return p.City
	}
	return ""
}

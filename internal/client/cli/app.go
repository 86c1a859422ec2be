package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/finkeeper/internal/client/api"
	"github.com/dmitrijs2005/finkeeper/internal/client/cache"
	"github.com/dmitrijs2005/finkeeper/internal/client/config"
	"github.com/dmitrijs2005/finkeeper/internal/client/session"
	"github.com/dmitrijs2005/finkeeper/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	api     *api.Client
	session *session.Session
	cache   cache.Repository
	reader  *bufio.Reader
	log     logging.Logger
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {

	ctx := context.Background()

	db, err := cache.InitDatabase(ctx, c.CacheDBPath)
	if err != nil {
		log.Printf("error initializing snapshot cache: %s", err.Error())
		return nil, err
	}

	coord := api.NewCoordinator()
	apiClient, err := api.New(c.APIBaseURL, c.RequestTimeout, coord, logger)
	if err != nil {
		return nil, err
	}

	sess := session.New()

	// The coordinator's invalidation broadcast is the only path that may
	// clear the session behind the user's back.
	coord.OnInvalidated(func() {
		sess.Clear()
		logger.Warn(ctx, "session invalidated, log in again")
	})

	return &App{
		config:  c,
		api:     apiClient,
		session: sess,
		cache:   cache.NewSQLiteRepository(db),
		reader:  bufio.NewReader(os.Stdin),
		log:     logger,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	if u := a.session.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return "(logged out)"
}

// bootstrap rebuilds the session from scratch with an identity probe and
// refreshes the local snapshots. When the coordinator already knows the
// session is invalid, the probe is skipped.
func (a *App) bootstrap(ctx context.Context) {
	if a.api.Coordinator().Invalid() {
		return
	}

	a.session.SetLoading(true)
	defer a.session.SetLoading(false)

	env, err := a.api.Me(ctx)
	if err != nil || !env.Success {
		return // stays logged out
	}
	a.session.SetUser(env.Data.User, "")
	a.syncSnapshots(ctx)
}

func (a *App) Run(ctx context.Context) {
	fmt.Println("FinKeeper CLI (type 'help' for commands)")
	a.bootstrap(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

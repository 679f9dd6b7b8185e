package cli

import (
	"bufio"
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/sanaol/canteen/internal/client/api"
	"github.com/sanaol/canteen/internal/client/cart"
	"github.com/sanaol/canteen/internal/client/config"
	"github.com/sanaol/canteen/internal/client/credentials"
	"github.com/sanaol/canteen/internal/client/models"
	"github.com/sanaol/canteen/internal/client/services"
	"github.com/sanaol/canteen/internal/logging"

	_ "modernc.org/sqlite"
)

// backend is the slice of the API client the REPL talks to directly,
// bypassing the services (simple passthrough endpoints).
type backend interface {
	Notifications(ctx context.Context) ([]models.Notification, error)
	SendFeedback(ctx context.Context, category, message string) (*models.Feedback, error)
	Feedback(ctx context.Context) ([]models.Feedback, error)
	UpdateName(ctx context.Context, name string) error
	ChangePassword(ctx context.Context, password string) error
	UpdateAvatar(ctx context.Context, dataURI string) error
}

type App struct {
	config   *config.Config
	store    *credentials.Store
	backend  backend
	auth     services.AuthService
	menu     services.MenuService
	orders   services.OrderService
	catering services.CateringService
	cart     *cart.Cart
	profile  *models.UserProfile
	lastMenu []models.MenuItem
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	store, err := credentials.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	apiClient, err := api.New(store, api.Config{
		BaseURL: c.BaseURL,
		Timeout: c.RequestTimeout,
		Logger:  logger,
	})
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &App{
		config:   c,
		store:    store,
		backend:  apiClient,
		auth:     services.NewAuthService(apiClient, store),
		menu:     services.NewMenuService(apiClient, store),
		orders:   services.NewOrderService(apiClient),
		catering: services.NewCateringService(apiClient),
		cart:     cart.New(),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.profile != nil
}

// StartMenuWatcher periodically checks whether the menu grew and announces
// new items, the CLI counterpart of the app's menu notification.
func (a *App) StartMenuWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			checkCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			added, err := a.menu.CheckNewItems(checkCtx)
			cancel()

			if err == nil && added > 0 {
				log.Printf("%d new item(s) on the menu, type 'menu' to browse\n", added)
			}

		case <-ctx.Done():
			return
		}
	}
}

package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/sanaol/canteen/internal/client/credentials"
	"github.com/sanaol/canteen/internal/client/models"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *credentials.Store {
	t.Helper()
	db, err := sql.Open("sqlite", "file:services_"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	return credentials.NewStore(db)
}

// fakeAPI implements the per-service API slices for unit tests.
type fakeAPI struct {
	LoginSession *models.Session
	LoginErr     error
	LastLoginUser string

	GuestSession *models.Session
	GuestErr     error

	RegisterErr error
	LastReg     models.Registration

	ProfileRet *models.UserProfile
	ProfileErr error

	LogoutCalls int

	MenuItemsRet  []models.MenuItem
	MenuItemsErr  error
	CategoriesRet []models.Category

	CreateOrderRet  *models.OrderConfirmation
	CreateOrderErr  error
	LastOrder       models.OrderRequest
	CreateOrderCalls int

	OrdersRet []models.Order

	StatusSeq   []*models.OrderStatus
	StatusErr   error
	StatusCalls int

	PayRet *models.PaymentResult
	PayErr error

	QRRet   *models.GcashDetails
	QRErr   error
	LinkRet *models.GcashDetails
	LinkErr error

	CancelErr error

	PointsRet float64
	PointsErr error

	RedeemRet float64
	RedeemErr error

	EventRet *models.CateringEvent
	EventErr error
	LastEvent models.CateringEvent

	UserEventsRet []models.CateringEvent
	UserEventsErr error
}

func (f *fakeAPI) Login(ctx context.Context, username, password string) (*models.Session, error) {
	f.LastLoginUser = username
	return f.LoginSession, f.LoginErr
}

func (f *fakeAPI) GuestLogin(ctx context.Context) (*models.Session, error) {
	return f.GuestSession, f.GuestErr
}

func (f *fakeAPI) Register(ctx context.Context, reg models.Registration) error {
	f.LastReg = reg
	return f.RegisterErr
}

func (f *fakeAPI) Profile(ctx context.Context) (*models.UserProfile, error) {
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeAPI) Logout(ctx context.Context) error {
	f.LogoutCalls++
	return nil
}

func (f *fakeAPI) MenuItems(ctx context.Context, category string) ([]models.MenuItem, error) {
	return f.MenuItemsRet, f.MenuItemsErr
}

func (f *fakeAPI) MenuCategories(ctx context.Context) ([]models.Category, error) {
	return f.CategoriesRet, nil
}

func (f *fakeAPI) CreateOrder(ctx context.Context, order models.OrderRequest) (*models.OrderConfirmation, error) {
	f.CreateOrderCalls++
	f.LastOrder = order
	return f.CreateOrderRet, f.CreateOrderErr
}

func (f *fakeAPI) Orders(ctx context.Context) ([]models.Order, error) {
	return f.OrdersRet, nil
}

func (f *fakeAPI) OrderStatus(ctx context.Context, orderNumber string) (*models.OrderStatus, error) {
	if f.StatusErr != nil {
		return nil, f.StatusErr
	}
	i := f.StatusCalls
	f.StatusCalls++
	if i >= len(f.StatusSeq) {
		i = len(f.StatusSeq) - 1
	}
	return f.StatusSeq[i], nil
}

func (f *fakeAPI) ConfirmPayment(ctx context.Context, orderNumber, method string) (*models.PaymentResult, error) {
	return f.PayRet, f.PayErr
}

func (f *fakeAPI) GcashQR(ctx context.Context, orderNumber string) (*models.GcashDetails, error) {
	return f.QRRet, f.QRErr
}

func (f *fakeAPI) GcashLink(ctx context.Context, orderNumber string) (*models.GcashDetails, error) {
	return f.LinkRet, f.LinkErr
}

func (f *fakeAPI) CancelOrder(ctx context.Context, orderNumber string) error {
	return f.CancelErr
}

func (f *fakeAPI) CreditPoints(ctx context.Context) (float64, error) {
	return f.PointsRet, f.PointsErr
}

func (f *fakeAPI) RedeemOffer(ctx context.Context, code string) (float64, error) {
	return f.RedeemRet, f.RedeemErr
}

func (f *fakeAPI) CreateCateringEvent(ctx context.Context, event models.CateringEvent) (*models.CateringEvent, error) {
	f.LastEvent = event
	return f.EventRet, f.EventErr
}

func (f *fakeAPI) UserCateringEvents(ctx context.Context, clientName string) ([]models.CateringEvent, error) {
	return f.UserEventsRet, f.UserEventsErr
}

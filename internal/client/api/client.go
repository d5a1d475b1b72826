package api

import (
	"context"

	"github.com/SaraBabic/PayTrackApp/internal/client/models"
)

// Client is the remote income-tracking API. Screens depend on this interface
// so tests can substitute fakes.
//
// All methods honor context cancellation. Mutations return only an error:
// screens re-fetch on their next activation instead of merging server echoes.
type Client interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, email, username, password string) error

	ListIncomes(ctx context.Context) ([]models.Income, error)
	GetIncome(ctx context.Context, id string) (*models.Income, error)
	CreateIncome(ctx context.Context, req models.IncomeRequest) error
	UpdateIncome(ctx context.Context, id string, req models.IncomeRequest) error
	DeleteIncome(ctx context.Context, id string) error

	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id string) (*models.Customer, error)
	CreateCustomer(ctx context.Context, name string) error
	UpdateCustomer(ctx context.Context, id string, name string) error
	DeleteCustomer(ctx context.Context, id string) error

	ListCurrencies(ctx context.Context) ([]models.Currency, error)
	GetCurrency(ctx context.Context, id string) (*models.Currency, error)
	CreateCurrency(ctx context.Context, req models.CurrencyRequest) error
	UpdateCurrency(ctx context.Context, id string, req models.CurrencyRequest) error
	DeleteCurrency(ctx context.Context, id string) error

	// SetToken attaches (or, with an empty string, detaches) the bearer token
	// sent with subsequent requests.
	SetToken(token string)
}

package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/SaraBabic/PayTrackApp/internal/client/api"
	"github.com/SaraBabic/PayTrackApp/internal/client/models"
	"github.com/SaraBabic/PayTrackApp/internal/logging"
)

// fakeClient scripts the API surface a screen under test touches. Methods it
// does not implement panic via the embedded nil interface, which is what we
// want: a screen calling something unexpected should fail the test loudly.
type fakeClient struct {
	api.Client

	incomes    []models.Income
	incomesErr error

	customers     []models.Customer
	customersErr  error
	currencies    []models.Currency
	currenciesErr error

	getIncome    *models.Income
	getIncomeErr error

	deleteErr  error
	deletedIDs []string

	created    []models.IncomeRequest
	createErr  error
	updatedID  string
	updated    []models.IncomeRequest
	updateErr  error

	getCustomer  *models.Customer
	getCurrency  *models.Currency
	createdNames []string
	currencyReqs []models.CurrencyRequest
}

func (f *fakeClient) ListIncomes(context.Context) ([]models.Income, error) {
	return f.incomes, f.incomesErr
}

func (f *fakeClient) ListCustomers(context.Context) ([]models.Customer, error) {
	return f.customers, f.customersErr
}

func (f *fakeClient) ListCurrencies(context.Context) ([]models.Currency, error) {
	return f.currencies, f.currenciesErr
}

func (f *fakeClient) GetIncome(context.Context, string) (*models.Income, error) {
	return f.getIncome, f.getIncomeErr
}

func (f *fakeClient) DeleteIncome(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeClient) CreateIncome(_ context.Context, req models.IncomeRequest) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, req)
	return nil
}

func (f *fakeClient) UpdateIncome(_ context.Context, id string, req models.IncomeRequest) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedID = id
	f.updated = append(f.updated, req)
	return nil
}

// testApp builds an App reading scripted input and writing to a buffer.
func testApp(t *testing.T, client api.Client, input string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &App{
		api:    client,
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    &out,
		log:    logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}, &out
}

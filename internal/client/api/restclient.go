package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/SaraBabic/PayTrackApp/internal/client/models"
)

// RestClient talks JSON over HTTP to the PayTrack API.
type RestClient struct {
	http *resty.Client
}

// NewRestClient builds a client for the given base URL. Every request gets a
// fresh X-Request-ID so failures can be correlated with server logs.
func NewRestClient(baseURL string, timeout time.Duration) *RestClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	c.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	return &RestClient{http: c}
}

func (c *RestClient) SetToken(token string) {
	c.http.SetAuthToken(token)
}

// errBody matches the API's error envelope.
type errBody struct {
	Message string `json:"message"`
}

// mapError folds transport failures and non-2xx responses into the package's
// error taxonomy.
func (c *RestClient) mapError(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !resp.IsError() {
		return nil
	}
	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	apiErr := &APIError{StatusCode: resp.StatusCode()}
	if body, ok := resp.Error().(*errBody); ok && body != nil {
		apiErr.Message = body.Message
	}
	return apiErr
}

func (c *RestClient) get(ctx context.Context, path string, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(out).
		SetError(&errBody{}).
		Get(path)
	return c.mapError(resp, err)
}

func (c *RestClient) send(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().
		SetContext(ctx).
		SetError(&errBody{})
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Execute(method, path)
	return c.mapError(resp, err)
}

func (c *RestClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	body := map[string]string{"email": email, "password": password}
	var session models.Session
	if err := c.send(ctx, http.MethodPost, "/api/auth/login", body, &session); err != nil {
		return nil, err
	}
	c.SetToken(session.Token)
	return &session, nil
}

func (c *RestClient) Register(ctx context.Context, email, username, password string) error {
	body := map[string]string{"email": email, "username": username, "password": password}
	return c.send(ctx, http.MethodPost, "/api/auth/register", body, nil)
}

func (c *RestClient) ListIncomes(ctx context.Context) ([]models.Income, error) {
	var incomes []models.Income
	if err := c.get(ctx, "/api/incomes", &incomes); err != nil {
		return nil, err
	}
	return incomes, nil
}

func (c *RestClient) GetIncome(ctx context.Context, id string) (*models.Income, error) {
	var income models.Income
	if err := c.get(ctx, "/api/incomes/"+id, &income); err != nil {
		return nil, err
	}
	return &income, nil
}

func (c *RestClient) CreateIncome(ctx context.Context, req models.IncomeRequest) error {
	return c.send(ctx, http.MethodPost, "/api/incomes", req, nil)
}

func (c *RestClient) UpdateIncome(ctx context.Context, id string, req models.IncomeRequest) error {
	return c.send(ctx, http.MethodPut, "/api/incomes/"+id, req, nil)
}

func (c *RestClient) DeleteIncome(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/api/incomes/"+id, nil, nil)
}

func (c *RestClient) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := c.get(ctx, "/api/customers", &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *RestClient) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	if err := c.get(ctx, "/api/customers/"+id, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *RestClient) CreateCustomer(ctx context.Context, name string) error {
	return c.send(ctx, http.MethodPost, "/api/customers", map[string]string{"name": name}, nil)
}

func (c *RestClient) UpdateCustomer(ctx context.Context, id string, name string) error {
	return c.send(ctx, http.MethodPut, "/api/customers/"+id, map[string]string{"name": name}, nil)
}

func (c *RestClient) DeleteCustomer(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/api/customers/"+id, nil, nil)
}

func (c *RestClient) ListCurrencies(ctx context.Context) ([]models.Currency, error) {
	var currencies []models.Currency
	if err := c.get(ctx, "/api/currencies", &currencies); err != nil {
		return nil, err
	}
	return currencies, nil
}

func (c *RestClient) GetCurrency(ctx context.Context, id string) (*models.Currency, error) {
	var currency models.Currency
	if err := c.get(ctx, "/api/currencies/"+id, &currency); err != nil {
		return nil, err
	}
	return &currency, nil
}

func (c *RestClient) CreateCurrency(ctx context.Context, req models.CurrencyRequest) error {
	return c.send(ctx, http.MethodPost, "/api/currencies", req, nil)
}

// UpdateCurrency uses PATCH: the currency endpoint accepts partial documents,
// unlike incomes and customers which expect a full PUT.
func (c *RestClient) UpdateCurrency(ctx context.Context, id string, req models.CurrencyRequest) error {
	return c.send(ctx, http.MethodPatch, "/api/currencies/"+id, req, nil)
}

func (c *RestClient) DeleteCurrency(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/api/currencies/"+id, nil, nil)
}

var _ Client = (*RestClient)(nil)

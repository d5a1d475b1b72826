package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SaraBabic/PayTrackApp/internal/client/models"
)

// errFormIncomplete blocks submission while amount, customer, or currency is
// missing. No request is sent in that case.
var errFormIncomplete = errors.New("please fill all fields")

// incomeForm holds the form state of the create/edit income screens. Values
// stay as the user entered them (amount is a string) until submission.
type incomeForm struct {
	amount      string
	description string
	paymentDate time.Time
	customerID  string
	currencyID  string
	status      models.Status
}

func newIncomeForm(now time.Time) incomeForm {
	return incomeForm{paymentDate: now, status: models.StatusPending}
}

// formFromIncome pre-fills the form from an existing record for editing.
func formFromIncome(inc *models.Income, now time.Time) incomeForm {
	f := incomeForm{
		amount:      strconv.FormatFloat(inc.Amount, 'f', -1, 64),
		description: inc.Description,
		paymentDate: now,
		customerID:  inc.Customer.ID,
		currencyID:  inc.Currency.ID,
		status:      inc.Status,
	}
	if inc.PaymentDate != nil {
		f.paymentDate = *inc.PaymentDate
	}
	return f
}

func (f *incomeForm) validate() error {
	if f.amount == "" || f.customerID == "" || f.currencyID == "" {
		return errFormIncomplete
	}
	if _, err := strconv.ParseFloat(f.amount, 64); err != nil {
		return fmt.Errorf("invalid amount %q", f.amount)
	}
	return nil
}

// request builds the submission payload: amount parsed from its string form,
// the date serialized to RFC3339.
func (f *incomeForm) request() (models.IncomeRequest, error) {
	if err := f.validate(); err != nil {
		return models.IncomeRequest{}, err
	}
	amount, _ := strconv.ParseFloat(f.amount, 64)
	return models.IncomeRequest{
		Amount:      amount,
		Description: f.description,
		PaymentDate: f.paymentDate.Format(time.RFC3339),
		CustomerID:  f.customerID,
		CurrencyID:  f.currencyID,
		Status:      f.status,
	}, nil
}

// fetchPickerLists loads the customer and currency lists the form's selectors
// operate on, concurrently.
func (a *App) fetchPickerLists(ctx context.Context) ([]models.Customer, []models.Currency, error) {
	var (
		customers  []models.Customer
		currencies []models.Currency
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customers, err = a.api.ListCustomers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		currencies, err = a.api.ListCurrencies(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return customers, currencies, nil
}

// CreateIncome is the create form: amount, description, payment date, and
// the three selector-backed fields. Submission is blocked client-side until
// amount, customer, and currency are all set.
func (a *App) CreateIncome(ctx context.Context) {
	customers, currencies, err := a.fetchPickerLists(ctx)
	if err != nil {
		a.log.Error(ctx, "error fetching picker lists", "err", err)
		a.println("Failed to load customers and currencies.")
		return
	}

	form := newIncomeForm(time.Now())
	if !a.fillIncomeForm(&form, customers, currencies) {
		return
	}

	req, err := form.request()
	if err != nil {
		// validation failure: alert, no request
		a.println("Error:", err.Error())
		return
	}

	if !a.submit(ctx, "Income added successfully!", "Failed to add income.", func() error {
		return a.api.CreateIncome(ctx, req)
	}) {
		return
	}
}

// EditIncome fetches the record plus both picker lists concurrently,
// pre-fills the form, and submits a full update.
func (a *App) EditIncome(ctx context.Context, id string) {
	var (
		income     *models.Income
		customers  []models.Customer
		currencies []models.Currency
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		income, err = a.api.GetIncome(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = a.api.ListCustomers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		currencies, err = a.api.ListCurrencies(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		a.log.Error(ctx, "error fetching income", "id", id, "err", err)
		a.println("Failed to load income.")
		return
	}

	form := formFromIncome(income, time.Now())
	a.printf("Editing income %s\n", formatAmount(income.Amount, currencySymbol(currencies, form.currencyID)))

	if !a.fillIncomeForm(&form, customers, currencies) {
		return
	}

	req, err := form.request()
	if err != nil {
		a.println("Error:", err.Error())
		return
	}

	if !a.submit(ctx, "Income updated successfully!", "Failed to update income.", func() error {
		return a.api.UpdateIncome(ctx, id, req)
	}) {
		return
	}
}

// fillIncomeForm walks the user through every field, keeping existing values
// on empty input. Returns false if reading input failed (EOF etc.).
func (a *App) fillIncomeForm(form *incomeForm, customers []models.Customer, currencies []models.Currency) bool {
	var err error

	form.amount, err = GetTextWithDefault(a.reader, "Amount", form.amount, a.out)
	if err != nil {
		return false
	}
	form.description, err = GetTextWithDefault(a.reader, "Description", form.description, a.out)
	if err != nil {
		return false
	}
	form.paymentDate, err = GetDate(a.reader, "Payment date", form.paymentDate, a.out)
	if err != nil {
		a.println("Error:", err.Error())
		return false
	}

	if c, ok := a.pick(selectCustomer, customerChoices(customers)); ok {
		form.customerID = c.id
	}
	if c, ok := a.pick(selectCurrency, currencyChoices(currencies)); ok {
		form.currencyID = c.id
	}
	if c, ok := a.pick(selectStatus, statusChoices()); ok {
		// selector only offers the three enum values
		form.status = models.Status(c.id)
	}

	return true
}

// submit runs the mutation, allowing immediate re-submission on failure so
// that entered form state is not lost.
func (a *App) submit(ctx context.Context, successMsg, failureMsg string, fn func() error) bool {
	for {
		err := fn()
		if err == nil {
			a.println(successMsg)
			return true
		}

		a.log.Error(ctx, "mutation failed", "err", err)
		a.println(failureMsg)

		retry, cerr := Confirm(a.reader, "Retry?", a.out)
		if cerr != nil || !retry {
			return false
		}
	}
}

func currencySymbol(currencies []models.Currency, id string) string {
	for _, c := range currencies {
		if c.ID == id {
			return c.Symbol
		}
	}
	return ""
}

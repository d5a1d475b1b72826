package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SaraBabic/PayTrackApp/internal/client/models"
)

// ManageCurrencies lists currencies with add/edit/delete row actions.
func (a *App) ManageCurrencies(ctx context.Context) {
	currencies, err := a.api.ListCurrencies(ctx)
	if err != nil {
		a.log.Error(ctx, "error fetching currencies", "err", err)
		a.println("Failed to load currencies.")
		return
	}

	for {
		if len(currencies) == 0 {
			a.println("No currencies.")
		}
		for i, c := range currencies {
			a.printf("%d) %s (%s)  rate %g\n", i+1, c.Name, c.Symbol, c.ExchangeRate)
		}

		answer, err := GetSimpleText(a.reader, "a add, e <n> edit, d <n> delete, Enter to go back", a.out)
		if err != nil || answer == "" {
			return
		}
		if answer == "a" {
			a.AddCurrency(ctx)
			return
		}

		action, n, ok := parseRowAction(answer, len(currencies))
		if !ok {
			a.println("Unknown action:", answer)
			continue
		}
		cur := currencies[n-1]

		switch action {
		case "e":
			a.EditCurrency(ctx, cur.ID)
			return
		case "d":
			yes, err := Confirm(a.reader, "Are you sure you want to delete currency \""+cur.Name+"\"?", a.out)
			if err != nil || !yes {
				continue
			}
			if err := a.api.DeleteCurrency(ctx, cur.ID); err != nil {
				a.log.Error(ctx, "error deleting currency", "id", cur.ID, "err", err)
				a.println("Failed to delete currency.")
				continue
			}
			currencies = removeCurrency(currencies, cur.ID)
			a.println("Currency deleted successfully.")
		}
	}
}

// currencyInput gathers the three currency fields; all are required.
func (a *App) currencyInput(name, symbol, rate string) (models.CurrencyRequest, error) {
	var err error
	if name, err = GetTextWithDefault(a.reader, "Currency name", name, a.out); err != nil {
		return models.CurrencyRequest{}, err
	}
	if symbol, err = GetTextWithDefault(a.reader, "Symbol", symbol, a.out); err != nil {
		return models.CurrencyRequest{}, err
	}
	if rate, err = GetTextWithDefault(a.reader, "Exchange rate", rate, a.out); err != nil {
		return models.CurrencyRequest{}, err
	}

	if name == "" || symbol == "" || rate == "" {
		return models.CurrencyRequest{}, errFormIncomplete
	}
	parsed, err := strconv.ParseFloat(rate, 64)
	if err != nil {
		return models.CurrencyRequest{}, fmt.Errorf("invalid exchange rate %q", rate)
	}

	return models.CurrencyRequest{Name: name, Symbol: symbol, ExchangeRate: parsed}, nil
}

func (a *App) AddCurrency(ctx context.Context) {
	req, err := a.currencyInput("", "", "")
	if err != nil {
		a.println("Error:", err.Error())
		return
	}

	a.submit(ctx, "Currency added successfully.", "Failed to add currency.", func() error {
		return a.api.CreateCurrency(ctx, req)
	})
}

// EditCurrency pre-fills from the record and submits a partial update
// (the currency endpoint is the one PATCH surface of the API).
func (a *App) EditCurrency(ctx context.Context, id string) {
	cur, err := a.api.GetCurrency(ctx, id)
	if err != nil {
		a.log.Error(ctx, "error fetching currency", "id", id, "err", err)
		a.println("Failed to load currency.")
		return
	}

	req, err := a.currencyInput(cur.Name, cur.Symbol, strconv.FormatFloat(cur.ExchangeRate, 'f', -1, 64))
	if err != nil {
		a.println("Error:", err.Error())
		return
	}

	a.submit(ctx, "Currency updated successfully.", "Failed to update currency.", func() error {
		return a.api.UpdateCurrency(ctx, id, req)
	})
}

func removeCustomer(customers []models.Customer, id string) []models.Customer {
	out := customers[:0:0]
	for _, c := range customers {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

func removeCurrency(currencies []models.Currency, id string) []models.Currency {
	out := currencies[:0:0]
	for _, c := range currencies {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

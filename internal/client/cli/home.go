package cli

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/SaraBabic/PayTrackApp/internal/client/models"
)

// Overview is the home screen: all incomes plus the running total in EUR.
// Incomes and currencies are fetched concurrently; if either request fails
// the whole screen shows the error and nothing else. There is no retry —
// re-entering the screen re-issues both requests.
func (a *App) Overview(ctx context.Context) {
	var (
		incomes    []models.Income
		currencies []models.Currency
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomes, err = a.api.ListIncomes(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		currencies, err = a.api.ListCurrencies(gctx)
		return err
	})

	a.println("Loading...")
	if err := g.Wait(); err != nil {
		a.log.Error(ctx, "error fetching data", "err", err)
		a.println("Failed to load incomes.")
		return
	}

	a.printf("Total amount: € %.2f\n\n", totalInEUR(incomes, currencies))

	for _, inc := range incomes {
		a.renderIncome(inc)
	}
}

func (a *App) renderIncome(inc models.Income) {
	a.printf("%s  %s", statusGlyph(inc.Status), formatAmount(inc.Amount, inc.Currency.Symbol))
	if inc.Customer.Name != "" {
		a.printf("  %s", inc.Customer.Name)
	}
	if d := formatDate(inc.PaymentDate); d != "" {
		a.printf("  %s", d)
	}
	a.println()
	if inc.Description != "" {
		a.printf("    %s\n", inc.Description)
	}
}

package cli

import (
	"fmt"
	"time"

	"github.com/SaraBabic/PayTrackApp/internal/client/models"
)

// statusGlyph maps a payment status to its list glyph. Total over the enum:
// every value the forms can produce has its own branch.
func statusGlyph(s models.Status) string {
	switch s {
	case models.StatusPaid:
		return "✓"
	case models.StatusPending:
		return "⌛"
	case models.StatusCanceled:
		return "✗"
	}
	return "?"
}

// formatDate renders a payment date the way the app always has (hr-HR short
// form, "2. 1. 2006."). A nil date renders empty.
func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2. 1. 2006.")
}

func formatAmount(amount float64, symbol string) string {
	return fmt.Sprintf("%g %s", amount, symbol)
}

// totalInEUR converts every income to the reference currency (EUR) by
// dividing its amount by the exchange rate of the matching currency, and sums
// the results. Incomes whose currency id has no match contribute zero.
func totalInEUR(incomes []models.Income, currencies []models.Currency) float64 {
	rates := make(map[string]float64, len(currencies))
	for _, c := range currencies {
		rates[c.ID] = c.ExchangeRate
	}

	var total float64
	for _, inc := range incomes {
		rate, ok := rates[inc.Currency.ID]
		if !ok || rate == 0 {
			continue
		}
		total += inc.Amount / rate
	}
	return total
}

// removeIncome returns incomes without the record with the given id. Called
// only after the server confirmed the delete, so the rendered list stays in
// step with the backend without a re-fetch.
func removeIncome(incomes []models.Income, id string) []models.Income {
	out := incomes[:0:0]
	for _, inc := range incomes {
		if inc.ID != id {
			out = append(out, inc)
		}
	}
	return out
}

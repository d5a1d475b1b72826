package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// ManageIncomes is the list screen with per-row actions. The fetched list is
// this screen's local state: a confirmed delete removes the row from it
// without a re-fetch, an edit re-enters through the edit form.
func (a *App) ManageIncomes(ctx context.Context) {
	incomes, err := a.api.ListIncomes(ctx)
	if err != nil {
		a.log.Error(ctx, "error fetching incomes", "err", err)
		a.println("Failed to load incomes.")
		return
	}

	for {
		if len(incomes) == 0 {
			a.println("No incomes.")
		}
		for i, inc := range incomes {
			a.printf("%d) ", i+1)
			a.renderIncome(inc)
		}

		answer, err := GetSimpleText(a.reader, "e <n> edit, d <n> delete, Enter to go back", a.out)
		if err != nil || answer == "" {
			return
		}

		action, n, ok := parseRowAction(answer, len(incomes))
		if !ok {
			a.println("Unknown action:", answer)
			continue
		}
		inc := incomes[n-1]

		switch action {
		case "e":
			a.EditIncome(ctx, inc.ID)
			return
		case "d":
			prompt := fmt.Sprintf("Are you sure you want to delete income: %s?", formatAmount(inc.Amount, inc.Currency.Symbol))
			yes, err := Confirm(a.reader, prompt, a.out)
			if err != nil || !yes {
				continue
			}
			if err := a.api.DeleteIncome(ctx, inc.ID); err != nil {
				a.log.Error(ctx, "error deleting income", "id", inc.ID, "err", err)
				a.println("Failed to delete income.")
				continue
			}
			// row leaves local state only once the server confirmed
			incomes = removeIncome(incomes, inc.ID)
			a.println("Income deleted successfully.")
		}
	}
}

// parseRowAction understands "e 2" / "d 3" style row commands.
func parseRowAction(input string, rows int) (action string, n int, ok bool) {
	parts := strings.Fields(input)
	if len(parts) != 2 {
		return "", 0, false
	}
	if parts[0] != "e" && parts[0] != "d" {
		return "", 0, false
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil || n < 1 || n > rows {
		return "", 0, false
	}
	return parts[0], n, true
}

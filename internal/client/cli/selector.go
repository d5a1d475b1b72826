package cli

import (
	"strconv"

	"github.com/SaraBabic/PayTrackApp/internal/client/models"
)

// selectorMode tags which list the selector shows. The selector itself is
// generic: it renders labels and hands back the chosen identity, regardless
// of what is being picked.
type selectorMode int

const (
	selectCustomer selectorMode = iota
	selectCurrency
	selectStatus
)

func (m selectorMode) title() string {
	switch m {
	case selectCustomer:
		return "Select customer"
	case selectCurrency:
		return "Select currency"
	case selectStatus:
		return "Select status"
	}
	return "Select"
}

// choice is one selectable row: an identity and the label rendered for it.
type choice struct {
	id    string
	label string
}

func customerChoices(customers []models.Customer) []choice {
	out := make([]choice, 0, len(customers))
	for _, c := range customers {
		out = append(out, choice{id: c.ID, label: c.Name})
	}
	return out
}

func currencyChoices(currencies []models.Currency) []choice {
	out := make([]choice, 0, len(currencies))
	for _, c := range currencies {
		out = append(out, choice{id: c.ID, label: c.Name})
	}
	return out
}

func statusChoices() []choice {
	out := make([]choice, 0, 3)
	for _, s := range models.StatusValues() {
		out = append(out, choice{id: string(s), label: string(s)})
	}
	return out
}

// pick renders the numbered choices and reads a selection. It operates purely
// on the list it was handed; no fetching happens here. The boolean is false
// when the user backs out (empty input or an out-of-range number).
func (a *App) pick(mode selectorMode, choices []choice) (choice, bool) {
	a.println(mode.title() + ":")
	for i, c := range choices {
		a.printf("  %d) %s\n", i+1, c.label)
	}

	answer, err := GetSimpleText(a.reader, "Enter number (Enter to cancel)", a.out)
	if err != nil || answer == "" {
		return choice{}, false
	}

	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(choices) {
		a.println("No such option.")
		return choice{}, false
	}
	return choices[n-1], true
}

package cli

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SaraBabic/PayTrackApp/internal/client/models"
)

func income(id, currencyID string, amount float64) models.Income {
	return models.Income{
		ID:       id,
		Amount:   amount,
		Currency: models.CurrencyRef{Currency: models.Currency{ID: currencyID}},
	}
}

func TestTotalInEUR_DividesByExchangeRate(t *testing.T) {
	currencies := []models.Currency{
		{ID: "eur", Name: "Euro", Symbol: "€", ExchangeRate: 1},
		{ID: "usd", Name: "US Dollar", Symbol: "$", ExchangeRate: 1.1},
	}
	incomes := []models.Income{
		income("i1", "eur", 100),
		income("i2", "usd", 200),
	}

	total := totalInEUR(incomes, currencies)

	// 100/1 + 200/1.1, shown with two decimals
	assert.InDelta(t, 281.8181, total, 0.001)
	assert.Equal(t, "281.82", fmt.Sprintf("%.2f", total))
}

func TestTotalInEUR_UnmatchedCurrencyContributesZero(t *testing.T) {
	currencies := []models.Currency{{ID: "eur", ExchangeRate: 1}}
	incomes := []models.Income{
		income("i1", "eur", 50),
		income("i2", "ghost", 1000),
	}

	assert.Equal(t, 50.0, totalInEUR(incomes, currencies))
}

func TestTotalInEUR_EmptyInputs(t *testing.T) {
	assert.Equal(t, 0.0, totalInEUR(nil, nil))
}

func TestStatusGlyph_TotalOverEnum(t *testing.T) {
	seen := map[string]models.Status{}
	for _, s := range models.StatusValues() {
		g := statusGlyph(s)
		assert.NotEqual(t, "?", g, "enum value %q fell through to the fallback", s)
		prev, dup := seen[g]
		assert.False(t, dup, "glyph %q used for both %q and %q", g, prev, s)
		seen[g] = s
	}
}

func TestRemoveIncome(t *testing.T) {
	incomes := []models.Income{income("a", "eur", 1), income("b", "eur", 2), income("c", "eur", 3)}

	got := removeIncome(incomes, "b")

	assert.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)

	// the input slice is left alone
	assert.Len(t, incomes, 3)
}

func TestRemoveIncome_MissingIDIsNoOp(t *testing.T) {
	incomes := []models.Income{income("a", "eur", 1)}
	assert.Len(t, removeIncome(incomes, "zz"), 1)
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, 3, 7, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "7. 3. 2025.", formatDate(&d))
	assert.Equal(t, "", formatDate(nil))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "150.5 €", formatAmount(150.5, "€"))
	assert.Equal(t, "200 $", formatAmount(200, "$"))
}

package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"calatorie/internal/currency"
)

func TestConvert_KnownRates(t *testing.T) {
	assert.InDelta(t, 100.0, currency.Convert(100, currency.USD), 1e-9)
	assert.InDelta(t, 92.0, currency.Convert(100, currency.EUR), 1e-9)
	assert.InDelta(t, 79.0, currency.Convert(100, currency.GBP), 1e-9)
	assert.InDelta(t, 497.0, currency.Convert(100, currency.RON), 1e-9)
	assert.InDelta(t, 14950.0, currency.Convert(100, currency.JPY), 1e-9)
	assert.InDelta(t, 88.0, currency.Convert(100, currency.CHF), 1e-9)
}

func TestConvert_UnknownCodeIsIdentity(t *testing.T) {
	assert.InDelta(t, 42.5, currency.Convert(42.5, currency.Code("XXX")), 1e-9)
}

func TestFormat_SymbolPlacement(t *testing.T) {
	assert.Equal(t, "$12.00", currency.Format(12, currency.USD))
	assert.Equal(t, "€12.34", currency.Format(12.34, currency.EUR))
	assert.Equal(t, "£0.50", currency.Format(0.5, currency.GBP))
	assert.Equal(t, "¥1495.00", currency.Format(1495, currency.JPY))
	assert.Equal(t, "Fr88.00", currency.Format(88, currency.CHF))

	// RON is the one suffix currency.
	assert.Equal(t, "49.70 lei", currency.Format(49.7, currency.RON))
}

func TestFormat_UnknownCodeUsesDollar(t *testing.T) {
	assert.Equal(t, "$7.00", currency.Format(7, currency.Code("XXX")))
}

func TestConvertThenFormat(t *testing.T) {
	// The spec scenario: 42.50 spent, shown in EUR.
	got := currency.Format(currency.Convert(42.50, currency.EUR), currency.EUR)
	assert.Equal(t, "€39.10", got)
}

func TestNext_CyclesAllCodes(t *testing.T) {
	seen := map[currency.Code]bool{}
	code := currency.USD
	for range currency.Codes {
		seen[code] = true
		code = currency.Next(code)
	}
	assert.Equal(t, currency.USD, code)
	assert.Len(t, seen, len(currency.Codes))
}

func TestNext_UnknownFallsBackToUSD(t *testing.T) {
	assert.Equal(t, currency.USD, currency.Next(currency.Code("XXX")))
}

package currency

import "fmt"

// Code identifies a supported display currency.
type Code string

// Supported currencies. USD is the base: every stored amount is in USD and
// conversion happens only when a value is shown.
const (
	USD Code = "USD"
	EUR Code = "EUR"
	GBP Code = "GBP"
	RON Code = "RON"
	JPY Code = "JPY"
	CHF Code = "CHF"
)

// Codes lists the supported currencies in display order.
var Codes = []Code{USD, EUR, GBP, RON, JPY, CHF}

var rates = map[Code]float64{
	USD: 1.0,
	EUR: 0.92,
	GBP: 0.79,
	RON: 4.97,
	JPY: 149.50,
	CHF: 0.88,
}

var symbols = map[Code]string{
	USD: "$",
	EUR: "€",
	GBP: "£",
	RON: "lei",
	JPY: "¥",
	CHF: "Fr",
}

// Valid reports whether code is one of the supported currencies.
func Valid(code Code) bool {
	_, ok := rates[code]
	return ok
}

// Convert converts an amount in the base currency to the target currency.
// Unknown codes fall back to the amount unchanged.
func Convert(amountUSD float64, target Code) float64 {
	rate, ok := rates[target]
	if !ok {
		return amountUSD
	}
	return amountUSD * rate
}

// Format renders an amount with two decimals and the currency symbol.
// RON is written "12.34 lei"; every other currency prefixes its symbol.
func Format(amount float64, code Code) string {
	symbol, ok := symbols[code]
	if !ok {
		symbol = "$"
	}
	if code == RON {
		return fmt.Sprintf("%.2f %s", amount, symbol)
	}
	return symbol + fmt.Sprintf("%.2f", amount)
}

// Next returns the currency after code in display order, wrapping around.
// Used by the budget view to cycle the display currency.
func Next(code Code) Code {
	for i, c := range Codes {
		if c == code {
			return Codes[(i+1)%len(Codes)]
		}
	}
	return USD
}

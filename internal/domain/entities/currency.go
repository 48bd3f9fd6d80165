package entities

// Currency is a display currency. It is used for formatting only; the
// service never converts between currencies.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Currencies is the fixed set of supported display currencies.
var Currencies = []Currency{
	{Code: "GHS", Symbol: "₵", Name: "Ghanaian Cedi"},
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
}

// DefaultCurrency returns the currency assigned to new estimates.
func DefaultCurrency() Currency {
	return Currencies[0]
}

// CurrencyByCode resolves a currency from the fixed set. The lookup is
// case-sensitive on purpose: codes are ISO 4217 uppercase.
func CurrencyByCode(code string) (Currency, bool) {
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

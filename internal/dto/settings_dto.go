package dto

// Settings are display-only: currency code and two exchange rates used
// by the UI for price formatting. They sit outside the core invariants
// and live in Redis, not in the ledger store.
type Settings struct {
	CurrencyCode string `json:"currency_code"`
	RateUSD      string `json:"rate_usd"`
	RateEUR      string `json:"rate_eur"`
}

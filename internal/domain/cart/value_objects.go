package cart

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Money is an amount in a single currency. It serializes with fixed
// two-decimal formatting so "10" and "10.00" render identically.
type Money struct {
	Amount       decimal.Decimal
	CurrencyCode string
}

func NewMoney(amount decimal.Decimal, currencyCode string) Money {
	return Money{Amount: amount, CurrencyCode: currencyCode}
}

func NewMoneyFromString(amount, currencyCode string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, err
	}
	return Money{Amount: d, CurrencyCode: currencyCode}, nil
}

func ZeroMoney(currencyCode string) Money {
	return Money{Amount: decimal.Zero, CurrencyCode: currencyCode}
}

func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount), CurrencyCode: m.CurrencyCode}
}

func (m Money) MulInt(n int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(n))), CurrencyCode: m.CurrencyCode}
}

func (m Money) IsZero() bool     { return m.Amount.IsZero() }
func (m Money) IsNegative() bool { return m.Amount.IsNegative() }

func (m Money) Equal(other Money) bool {
	return m.CurrencyCode == other.CurrencyCode && m.Amount.Equal(other.Amount)
}

func (m Money) String() string {
	return m.Amount.StringFixed(2)
}

type moneyJSON struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{
		Amount:       m.Amount.StringFixed(2),
		CurrencyCode: m.CurrencyCode,
	})
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	amount, err := decimal.NewFromString(raw.Amount)
	if err != nil {
		return err
	}
	m.Amount = amount
	m.CurrencyCode = raw.CurrencyCode
	return nil
}

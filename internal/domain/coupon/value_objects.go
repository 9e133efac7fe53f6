package coupon

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidCouponType      = errors.New("invalid coupon type")
	ErrInvalidDiscountValue   = errors.New("discount value cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Type string

const (
	TypePercentage   Type = "percentage"
	TypeFixedAmount  Type = "fixed_amount"
	TypeFreeShipping Type = "free_shipping"
)

func (t Type) IsValid() bool {
	switch t {
	case TypePercentage, TypeFixedAmount, TypeFreeShipping:
		return true
	default:
		return false
	}
}

// Coupon is a discount rule. Its contribution is derived from the current
// subtotal on every evaluation and is never stored.
type Coupon struct {
	code            Code
	typ             Type
	value           decimal.Decimal
	minimumSubtotal *decimal.Decimal
}

func NewCoupon(code string, typ Type, value decimal.Decimal, minimumSubtotal *decimal.Decimal) (Coupon, error) {
	couponCode, err := NewCouponCode(code)
	if err != nil {
		return Coupon{}, err
	}

	if !typ.IsValid() {
		return Coupon{}, ErrInvalidCouponType
	}

	if value.IsNegative() {
		return Coupon{}, ErrInvalidDiscountValue
	}

	if typ == TypePercentage && value.GreaterThan(decimal.NewFromInt(100)) {
		return Coupon{}, ErrInvalidDiscountPercent
	}

	var minCopy *decimal.Decimal
	if minimumSubtotal != nil {
		m := *minimumSubtotal
		minCopy = &m
	}

	return Coupon{
		code:            couponCode,
		typ:             typ,
		value:           value,
		minimumSubtotal: minCopy,
	}, nil
}

func (c Coupon) Code() Code             { return c.code }
func (c Coupon) Type() Type             { return c.typ }
func (c Coupon) Value() decimal.Decimal { return c.value }

func (c Coupon) MinimumSubtotal() *decimal.Decimal {
	if c.minimumSubtotal == nil {
		return nil
	}
	m := *c.minimumSubtotal
	return &m
}

// EligibleFor reports whether the coupon may contribute at the given
// subtotal. An ineligible coupon stays applied but contributes nothing.
func (c Coupon) EligibleFor(subtotal decimal.Decimal) bool {
	if c.minimumSubtotal == nil {
		return true
	}
	return subtotal.GreaterThanOrEqual(*c.minimumSubtotal)
}

// DiscountFor computes the coupon's contribution against the given subtotal.
// The contribution is capped at the subtotal; free_shipping contributes
// nothing here because shipping is priced downstream.
func (c Coupon) DiscountFor(subtotal decimal.Decimal) decimal.Decimal {
	if !c.EligibleFor(subtotal) {
		return decimal.Zero
	}

	var amount decimal.Decimal
	switch c.typ {
	case TypePercentage:
		amount = subtotal.Mul(c.value).Div(decimal.NewFromInt(100))
	case TypeFixedAmount:
		amount = c.value
	case TypeFreeShipping:
		return decimal.Zero
	default:
		return decimal.Zero
	}

	if amount.GreaterThan(subtotal) {
		return subtotal
	}
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

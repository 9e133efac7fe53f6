package cart

import "math"

// Reduce is the pure cart transition: (cart-or-absent, action) -> new cart.
// It performs no I/O and never fails; unknown actions and updates targeting
// absent lines leave the cart unchanged apart from a full recompute.
// Identical inputs always yield structurally identical output.
func Reduce(current *Cart, action Action, fallbackCurrency string) Cart {
	var base Cart
	if current != nil {
		base = *current
	} else {
		base = NewEmptyCart("", fallbackCurrency)
	}

	var lines []LineItem
	switch a := action.(type) {
	case UpdateItemAction:
		lines = applyUpdateItem(base.Lines, a)
	case AddItemAction:
		lines = applyAddItem(base.Lines, a)
	default:
		lines = copyLines(base.Lines)
	}

	// Totals are always rebuilt from the resulting line set, never patched
	// incrementally, so quantity and cost cannot drift.
	totals := CalculateTotalsForLines(lines, fallbackCurrency, base.Coupons())

	return Cart{
		ID:            base.ID,
		Lines:         lines,
		TotalQuantity: totals.TotalQuantity,
		Cost: Cost{
			Subtotal: totals.Subtotal,
			Discount: totals.Discount,
			Tax:      totals.Tax,
			Total:    totals.Total,
		},
		AppliedCoupons: totals.AppliedCoupons,
	}
}

func applyUpdateItem(lines []LineItem, action UpdateItemAction) []LineItem {
	idx := -1
	for i, line := range lines {
		if line.MerchandiseID == action.MerchandiseID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return copyLines(lines)
	}

	if action.UpdateType == UpdateDelete {
		return removeLineAt(lines, idx)
	}

	target := lines[idx]
	quantity := target.Quantity
	switch action.UpdateType {
	case UpdatePlus:
		quantity++
	case UpdateMinus:
		quantity--
	case UpdateSet:
		quantity = int(math.Max(0, math.Round(action.Quantity)))
	}

	// Dropping to zero or below destroys the line; it is never retained at
	// quantity zero.
	if quantity <= 0 {
		return removeLineAt(lines, idx)
	}

	next := copyLines(lines)
	next[idx] = NewLineItem(target.ID, target.MerchandiseID, quantity, target.Unit)
	return next
}

func applyAddItem(lines []LineItem, action AddItemAction) []LineItem {
	delta := int(math.Round(action.QuantityDelta))
	if delta < 1 {
		delta = 1
	}

	next := copyLines(lines)
	for i, line := range next {
		if line.MerchandiseID == action.MerchandiseID {
			next[i] = NewLineItem(line.ID, line.MerchandiseID, line.Quantity+delta, line.Unit)
			return next
		}
	}

	return append(next, NewLineItem(nil, action.MerchandiseID, delta, action.Unit))
}

func copyLines(lines []LineItem) []LineItem {
	next := make([]LineItem, len(lines))
	copy(next, lines)
	return next
}

func removeLineAt(lines []LineItem, idx int) []LineItem {
	next := make([]LineItem, 0, len(lines)-1)
	next = append(next, lines[:idx]...)
	next = append(next, lines[idx+1:]...)
	return next
}

package cart

// ProjectForSelection derives a checkout-scoped cart by intersecting the
// cart's lines with the selected merchandise ids and recomputing totals.
//
// An absent or empty selection means "all lines" and returns the cart
// unchanged. A selection matching no lines yields a structurally valid
// empty-lines cart, covering the case where every selected item was removed
// elsewhere before checkout.
func ProjectForSelection(c Cart, selected []string, fallbackCurrency string) Cart {
	if len(selected) == 0 {
		return c
	}

	chosen := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		chosen[id] = struct{}{}
	}

	lines := make([]LineItem, 0, len(c.Lines))
	for _, line := range c.Lines {
		if _, ok := chosen[line.MerchandiseID]; ok {
			lines = append(lines, line)
		}
	}

	totals := CalculateTotalsForLines(lines, fallbackCurrency, c.Coupons())

	return Cart{
		ID:            c.ID,
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

// Package freight holds the shipping tier rules and the pt-BR display
// formatting helpers. Everything here is a pure function.
package freight

import (
	"fmt"
	"strings"
	"time"
)

// Shipping tiers by subtotal.
const (
	freeShippingThreshold = 200.00
	midTierLower          = 52.00
	midTierUpper          = 166.59
	midTierCost           = 15.00
	defaultCost           = 20.00
)

// Calculate returns the shipping cost for a cart subtotal.
// Subtotals of 200.00 and above ship free; 52.00 through 166.59
// inclusive cost 15.00; everything else costs 20.00. The band between
// 166.59 and 200.00 intentionally falls back to 20.00.
func Calculate(subtotal float64) float64 {
	switch {
	case subtotal >= freeShippingThreshold:
		return 0
	case subtotal >= midTierLower && subtotal <= midTierUpper:
		return midTierCost
	default:
		return defaultCost
	}
}

// FormatCurrency renders a value as Brazilian reais, e.g. "R$ 1.234,56".
func FormatCurrency(value float64) string {
	negative := value < 0
	if negative {
		value = -value
	}

	whole := fmt.Sprintf("%.2f", value)
	intPart := whole[:len(whole)-3]
	fracPart := whole[len(whole)-2:]

	// Group the integer digits in threes with dots.
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	formatted := fmt.Sprintf("R$ %s,%s", strings.Join(groups, "."), fracPart)
	if negative {
		return "-" + formatted
	}
	return formatted
}

// FormatDate renders a timestamp in the Brazilian day/month/year form.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

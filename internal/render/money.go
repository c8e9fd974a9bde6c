package render

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lagosrent/rentoracle/internal/domain"
)

// printer renders grouped-digit amounts (₦2,500,000) for the detailed annual
// breakdown.
var printer = message.NewPrinter(language.English)

// Money renders an abbreviated naira amount for summaries: millions to one
// decimal (₦1.5M), anything smaller in thousands (₦400k).
func Money(amount float64) string {
	if amount >= 1_000_000 {
		return fmt.Sprintf("₦%.1fM", amount/1_000_000)
	}
	return fmt.Sprintf("₦%.0fk", amount/1_000)
}

// MoneyFull renders a full grouped-digit naira amount, e.g. ₦2,500,000.
func MoneyFull(amount float64) string {
	return printer.Sprintf("₦%d", int64(amount))
}

// Range renders the fair-range summary line, e.g.
// "₦400k - ₦800k (avg: ₦600k)".
func Range(stat domain.PriceStat) string {
	return fmt.Sprintf("%s - %s (avg: %s)", Money(stat.Min), Money(stat.Max), Money(stat.Avg))
}

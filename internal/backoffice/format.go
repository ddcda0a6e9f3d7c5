package backoffice

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateTimeLayout fecha media + hora media en inglés de EE. UU.
const DateTimeLayout = "Jan 2, 2006, 3:04:05 PM"

// UnknownLabel texto de una referencia que no está en la lista de lookup.
const UnknownLabel = "Unknown"

// FormatCurrency USD con 2 decimales y separador de miles: "$1,234.50", "-$5.00".
// Trabaja sobre el texto del decimal, sin pasar por float64.
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	whole, frac, _ := strings.Cut(rounded.StringFixed(2), ".")
	return sign + "$" + groupThousands(whole) + "." + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatDateTime formatea t en la zona del usuario. Una fecha cero queda vacía.
func FormatDateTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DateTimeLayout)
}

// FormatOptionalDateTime como FormatDateTime; nil queda vacío.
func FormatOptionalDateTime(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return FormatDateTime(*t, loc)
}

// FormatBool "Yes" o "No".
func FormatBool(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

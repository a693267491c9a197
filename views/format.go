package views

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatPrice renders a price with English digit grouping and at most three fraction
// digits: 3200 -> "3,200", 1234.5 -> "1,234.5".
func FormatPrice(price float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprint(number.Decimal(price, number.MaxFractionDigits(3)))
}

// FormatRating renders a property rating with one decimal and a trailing star.
func FormatRating(rating float64) string {
	return fmt.Sprintf("%.1f ★", rating)
}

// FormatReviewStars renders the raw review rating after a leading star: "★ 4.5".
func FormatReviewStars(rating float64) string {
	return "★ " + strconv.FormatFloat(rating, 'f', -1, 64)
}

func plural(n int, singular string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss", n, singular)
	}
	return fmt.Sprintf("%d %s", n, singular)
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

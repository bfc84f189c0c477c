package feed

import "fmt"

// FormatUSD renders a dollar amount with a K/M/B suffix.
func FormatUSD(v float64) string {
	switch {
	case v >= 1_000_000_000:
		return fmt.Sprintf("$%.2fB", v/1_000_000_000)
	case v >= 1_000_000:
		return fmt.Sprintf("$%.2fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("$%.2fK", v/1_000)
	default:
		return fmt.Sprintf("$%.2f", v)
	}
}

// FormatPrice renders a token price with precision scaled to magnitude,
// so sub-cent tokens keep meaningful digits.
func FormatPrice(price float64) string {
	switch {
	case price >= 1:
		return "$" + addCommas(fmt.Sprintf("%.2f", price))
	case price >= 0.01:
		return fmt.Sprintf("$%.4f", price)
	default:
		return fmt.Sprintf("$%.6f", price)
	}
}

func addCommas(s string) string {
	dot := len(s)
	for i, c := range s {
		if c == '.' {
			dot = i
			break
		}
	}
	intPart, rest := s[:dot], s[dot:]
	n := len(intPart)
	if n <= 3 {
		return s
	}
	var out []byte
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, intPart[i])
	}
	return string(out) + rest
}

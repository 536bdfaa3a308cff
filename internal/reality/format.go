package reality

import "fmt"

// FormatWon renders a KRW amount with comma-grouped digits.
func FormatWon(amount int64) string {
	if amount == 0 {
		return "0"
	}
	var sign string
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := fmt.Sprintf("%d", amount)
	var result []byte
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return sign + string(result)
}

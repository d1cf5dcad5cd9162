package utils

import "fmt"

// FormatMoney renders an amount in minor units (paise) as rupees with two
// decimals, e.g. 13000 -> "Rs 130.00".
func FormatMoney(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%sRs %d.%02d", sign, minor/100, minor%100)
}

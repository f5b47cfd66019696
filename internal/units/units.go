// Package units converts raw telemetry values into human-readable strings.
package units

import "fmt"

var byteUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// FormatBytes scales n by powers of 1024 and picks the largest unit where the
// scaled value is at least 1. Values below 1 KiB render as whole bytes with no
// decimals; everything else renders with exactly two decimals.
func FormatBytes(n uint64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	value := float64(n)
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", value, byteUnits[unit])
}

// FormatPercent renders f with one decimal place using fmt's shortest-correct
// rounding (round half to even). Values are not clamped; a provider-reported
// value above 100 renders as-is.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f", f)
}

// FormatTemp renders a temperature in degrees Celsius with one decimal place.
func FormatTemp(f float64) string {
	return fmt.Sprintf("%.1f°C", f)
}

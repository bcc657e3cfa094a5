package service

import "strconv"

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders a byte count with binary units and at most two
// decimals, e.g. 1536 -> "1.5 KB". Values of a terabyte and more stay in GB.
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	const k = 1024
	value := float64(bytes)
	unit := 0
	for value >= k && unit < len(sizeUnits)-1 {
		value /= k
		unit++
	}

	// Round to two decimals, then drop trailing zeros.
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(value, 'f', 2, 64), 64)
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + sizeUnits[unit]
}

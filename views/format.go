package views

import "strconv"

func trimZeros(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// trimRating always shows two decimals, the way ratings are printed everywhere
// on the site.
func trimRating(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

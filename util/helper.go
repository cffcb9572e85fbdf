package util

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

func IetfToIsoLangCode(ietf string) string {
	switch ietf {
	case "uk":
		return "uk_UA"
	case "ru":
		return "ru_RU"
	default:
		return "en_US"
	}
}

// CleanName collapses inner whitespace and normalizes the string to NFC so
// that visually identical names compare equal.
func CleanName(s string) string {
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}

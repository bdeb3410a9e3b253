// Package email derives presentable names from email addresses, for
// greetings when an account has no profile name yet.
package email

import (
	"strings"
	"unicode"
)

// DisplayName turns the local part of an address into a greeting-friendly
// name: "ana.bustos@x.mx" becomes "Ana". Falls back to "Cliente" when the
// local part has nothing usable.
func DisplayName(address string) string {
	localPart := address
	if at := strings.IndexByte(address, '@'); at > 0 {
		localPart = address[:at]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	if len(parts) == 0 || parts[0] == "" {
		return "Cliente"
	}
	return capitalize(parts[0])
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

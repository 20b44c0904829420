package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatName replaces underscores with spaces and title-cases every word
// (e.g., "joão_silva" -> "João Silva")
func FormatName(text string) string {
	// cases.Caser keeps state between calls, so each call gets its own.
	caser := cases.Title(language.BrazilianPortuguese)
	return caser.String(strings.ReplaceAll(text, "_", " "))
}

// FormatCode uppercases short codes such as categoria, emissor and UF
func FormatCode(code string) string {
	return cases.Upper(language.BrazilianPortuguese).String(code)
}

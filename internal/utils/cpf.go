package utils

import "strings"

// StripCPF removes the punctuation ("." and "-") from a CPF
func StripCPF(cpf string) string {
	return strings.NewReplacer(".", "", "-", "").Replace(cpf)
}

// FormatCPF punctuates a CPF as XXX.XXX.XXX-XX.
// Values that do not have 11 characters once stripped are returned unchanged.
// Length and positions are counted in runes.
func FormatCPF(cpf string) string {
	digits := []rune(StripCPF(cpf))
	if len(digits) != 11 {
		return cpf
	}
	return string(digits[:3]) + "." + string(digits[3:6]) + "." + string(digits[6:9]) + "-" + string(digits[9:])
}

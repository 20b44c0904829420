package observability

import (
	"github.com/prefeitura-rio/app-cnh/internal/logging"
	"github.com/prefeitura-rio/app-cnh/internal/utils"
)

// Logger returns the global safe logger instance
func Logger() *logging.SafeLogger {
	return logging.Logger
}

// MaskCPF masks a CPF number for logging. Punctuated and bare CPFs are both accepted.
func MaskCPF(cpf string) string {
	digits := []rune(utils.StripCPF(cpf))
	if len(digits) != 11 {
		return "***.***.***-**"
	}
	return string(digits[:3]) + ".***" + "." + string(digits[6:9]) + "-**"
}

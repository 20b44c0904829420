package services

import (
	"sort"
	"strings"

	"github.com/prefeitura-rio/app-cnh/internal/models"
	"github.com/prefeitura-rio/app-cnh/internal/utils"
)

// Fields formatted as free text (underscores become spaces, then title case)
var textFields = map[string]bool{
	models.FieldNome:            true,
	models.FieldNascimentoLocal: true,
	models.FieldNacionalidade:   true,
	models.FieldFiliacao1:       true,
	models.FieldFiliacao2:       true,
}

// Fields holding short uppercase codes
var codeFields = map[string]bool{
	models.FieldCategoria:    true,
	models.FieldEmissor:      true,
	models.FieldUFNascimento: true,
	models.FieldUFEmissao:    true,
}

// Fields holding DD-MM-YYYY dates
var dateFields = map[string]bool{
	models.FieldPrimeiraHabilitacao: true,
	models.FieldNascimentoData:      true,
	models.FieldEmissao:             true,
	models.FieldValidade:            true,
}

// Fields the update path renormalizes. Any other column is stored as sent.
var updateFormattedFields = map[string]bool{
	models.FieldNome:      true,
	models.FieldCPF:       true,
	models.FieldCategoria: true,
	models.FieldValidade:  true,
}

var requiredFields = func() map[string]bool {
	m := make(map[string]bool, len(models.RequiredCNHFields))
	for _, f := range models.RequiredCNHFields {
		m[f] = true
	}
	return m
}()

// isBlank reports whether a payload value counts as missing
func isBlank(value interface{}) bool {
	if value == nil {
		return true
	}
	return strings.TrimSpace(utils.ToString(value)) == ""
}

// formatField applies the creation rule for a single column
func formatField(field, value string) (string, error) {
	switch {
	case field == models.FieldCPF:
		return utils.FormatCPF(value), nil
	case textFields[field]:
		return utils.FormatName(value), nil
	case codeFields[field]:
		return utils.FormatCode(value), nil
	case dateFields[field]:
		if value == "" {
			return "", nil
		}
		return utils.FormatDate(field, value)
	default:
		return value, nil
	}
}

// NormalizeCNH validates a creation payload and builds the canonical record.
// Mandatory fields are checked in order (nome, cpf, registro, categoria) and
// the first missing one is reported. Unknown keys are rejected.
func NormalizeCNH(payload map[string]interface{}) (*models.CNH, error) {
	for _, field := range models.RequiredCNHFields {
		if isBlank(payload[field]) {
			return nil, models.NewRequiredFieldError(field)
		}
	}

	for _, key := range sortedKeys(payload) {
		if !models.IsCNHField(key) {
			return nil, models.NewUnknownFieldError(key)
		}
	}

	cnh := &models.CNH{}
	for _, field := range models.CNHFields {
		raw, ok := payload[field]
		if !ok {
			continue
		}
		value, err := formatField(field, utils.ToString(raw))
		if err != nil {
			return nil, err
		}
		_ = cnh.Set(field, value)
	}

	return cnh, nil
}

// NormalizeUpdate validates a partial payload and returns the columns to write.
// Keys are matched case-insensitively. registro cannot change. Only nome, cpf,
// categoria and validade are reformatted.
func NormalizeUpdate(payload map[string]interface{}) (map[string]string, error) {
	fields := make(map[string]string, len(payload))

	// Sorted so that colliding keys ("Nome" and "nome") resolve the same way every time.
	for _, key := range sortedKeys(payload) {
		field := strings.ToLower(key)
		if field == models.FieldRegistro {
			return nil, models.NewImmutableFieldError(field)
		}
		if !models.IsCNHField(field) {
			return nil, models.NewUnknownFieldError(key)
		}

		value := utils.ToString(payload[key])
		if requiredFields[field] && strings.TrimSpace(value) == "" {
			return nil, models.NewRequiredFieldError(field)
		}

		if updateFormattedFields[field] {
			formatted, err := formatField(field, value)
			if err != nil {
				return nil, err
			}
			value = formatted
		}
		fields[field] = value
	}

	return fields, nil
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

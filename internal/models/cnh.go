package models

import "fmt"

// CNH field names. The same snake_case keys are used for JSON payloads,
// BSON documents, SQLite columns and Redis hash fields.
const (
	FieldRegistro            = "registro"
	FieldNome                = "nome"
	FieldCPF                 = "cpf"
	FieldCategoria           = "categoria"
	FieldPrimeiraHabilitacao = "primeira_habilitacao"
	FieldNascimentoData      = "nascimento_data"
	FieldNascimentoLocal     = "nascimento_local"
	FieldUFNascimento        = "uf_nascimento"
	FieldEmissao             = "emissao"
	FieldValidade            = "validade"
	FieldIdentidade          = "identidade"
	FieldEmissor             = "emissor"
	FieldUFEmissao           = "uf_emissao"
	FieldNacionalidade       = "nacionalidade"
	FieldFiliacao1           = "filiacao1"
	FieldFiliacao2           = "filiacao2"
)

// CNHFields lists every column of a CNH record, primary key first.
var CNHFields = []string{
	FieldRegistro,
	FieldNome,
	FieldCPF,
	FieldCategoria,
	FieldPrimeiraHabilitacao,
	FieldNascimentoData,
	FieldNascimentoLocal,
	FieldUFNascimento,
	FieldEmissao,
	FieldValidade,
	FieldIdentidade,
	FieldEmissor,
	FieldUFEmissao,
	FieldNacionalidade,
	FieldFiliacao1,
	FieldFiliacao2,
}

// RequiredCNHFields are the fields that must be present and non-empty on creation,
// in the order they are checked.
var RequiredCNHFields = []string{FieldNome, FieldCPF, FieldRegistro, FieldCategoria}

// CNH represents a driver's license record
type CNH struct {
	Registro            string `bson:"registro" json:"registro"`
	Nome                string `bson:"nome" json:"nome"`
	CPF                 string `bson:"cpf" json:"cpf"`
	Categoria           string `bson:"categoria" json:"categoria"`
	PrimeiraHabilitacao string `bson:"primeira_habilitacao" json:"primeira_habilitacao"`
	NascimentoData      string `bson:"nascimento_data" json:"nascimento_data"`
	NascimentoLocal     string `bson:"nascimento_local" json:"nascimento_local"`
	UFNascimento        string `bson:"uf_nascimento" json:"uf_nascimento"`
	Emissao             string `bson:"emissao" json:"emissao"`
	Validade            string `bson:"validade" json:"validade"`
	Identidade          string `bson:"identidade" json:"identidade"`
	Emissor             string `bson:"emissor" json:"emissor"`
	UFEmissao           string `bson:"uf_emissao" json:"uf_emissao"`
	Nacionalidade       string `bson:"nacionalidade" json:"nacionalidade"`
	Filiacao1           string `bson:"filiacao1" json:"filiacao1"`
	Filiacao2           string `bson:"filiacao2" json:"filiacao2"`
}

// IsCNHField reports whether name is a known CNH column.
func IsCNHField(name string) bool {
	_, ok := cnhFieldSet[name]
	return ok
}

var cnhFieldSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(CNHFields))
	for _, f := range CNHFields {
		set[f] = struct{}{}
	}
	return set
}()

// fieldPtr returns a pointer to the struct field backing the named column.
func (c *CNH) fieldPtr(name string) *string {
	switch name {
	case FieldRegistro:
		return &c.Registro
	case FieldNome:
		return &c.Nome
	case FieldCPF:
		return &c.CPF
	case FieldCategoria:
		return &c.Categoria
	case FieldPrimeiraHabilitacao:
		return &c.PrimeiraHabilitacao
	case FieldNascimentoData:
		return &c.NascimentoData
	case FieldNascimentoLocal:
		return &c.NascimentoLocal
	case FieldUFNascimento:
		return &c.UFNascimento
	case FieldEmissao:
		return &c.Emissao
	case FieldValidade:
		return &c.Validade
	case FieldIdentidade:
		return &c.Identidade
	case FieldEmissor:
		return &c.Emissor
	case FieldUFEmissao:
		return &c.UFEmissao
	case FieldNacionalidade:
		return &c.Nacionalidade
	case FieldFiliacao1:
		return &c.Filiacao1
	case FieldFiliacao2:
		return &c.Filiacao2
	}
	return nil
}

// Get returns the value of the named column.
func (c *CNH) Get(name string) (string, bool) {
	p := c.fieldPtr(name)
	if p == nil {
		return "", false
	}
	return *p, true
}

// Set overwrites the named column.
func (c *CNH) Set(name, value string) error {
	p := c.fieldPtr(name)
	if p == nil {
		return fmt.Errorf("unknown CNH field: %s", name)
	}
	*p = value
	return nil
}

// Apply overwrites every column present in fields. Unknown names are rejected
// before anything is written.
func (c *CNH) Apply(fields map[string]string) error {
	for name := range fields {
		if !IsCNHField(name) {
			return fmt.Errorf("unknown CNH field: %s", name)
		}
	}
	for name, value := range fields {
		_ = c.Set(name, value)
	}
	return nil
}

// Values returns the column values in CNHFields order.
func (c *CNH) Values() []string {
	values := make([]string, len(CNHFields))
	for i, f := range CNHFields {
		values[i], _ = c.Get(f)
	}
	return values
}

// ToMap returns the record as a column → value map.
func (c *CNH) ToMap() map[string]string {
	m := make(map[string]string, len(CNHFields))
	for _, f := range CNHFields {
		m[f], _ = c.Get(f)
	}
	return m
}

// CNHFromMap builds a record from a column → value map, ignoring unknown keys.
func CNHFromMap(m map[string]string) CNH {
	var c CNH
	for name, value := range m {
		if p := c.fieldPtr(name); p != nil {
			*p = value
		}
	}
	return c
}

// CNHFromValues builds a record from values in CNHFields order.
func CNHFromValues(values []string) CNH {
	var c CNH
	for i, f := range CNHFields {
		if i >= len(values) {
			break
		}
		*c.fieldPtr(f) = values[i]
	}
	return c
}

// CNHResponse wraps a record with a user-facing message
type CNHResponse struct {
	Mensagem string `json:"mensagem"`
	CNH      CNH    `json:"cnh"`
}

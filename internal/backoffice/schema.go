package backoffice

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownField el campo no pertenece al esquema.
	ErrUnknownField = errors.New("campo desconocido")
	// ErrOutOfBounds el valor viola la longitud máxima, el rango numérico o el catálogo del campo.
	ErrOutOfBounds = errors.New("valor fuera de los límites del campo")
)

// FieldKind tipo de entrada de un campo.
type FieldKind int

const (
	KindText FieldKind = iota
	KindNumber
	KindDecimal
	KindBool
	KindReference
	KindEnum
)

// FieldMode en qué operaciones se envía el campo.
type FieldMode int

const (
	Always FieldMode = iota
	CreateOnly
	UpdateOnly
)

// Field describe un campo editable.
type Field struct {
	Name      string
	Label     string
	Kind      FieldKind
	Mode      FieldMode
	MaxLength int              // KindText; 0 = sin límite
	Min, Max  *decimal.Decimal // KindNumber y KindDecimal
	Scale     int32            // decimales permitidos en KindDecimal
	Lookup    string           // KindReference: nombre de la lista de lookup
	Options   []string         // KindEnum
	// ExcludeSelf oculta el registro editado de la lista de lookup (padre de categoría).
	ExcludeSelf bool
}

// Values borrador como texto crudo por nombre de campo. "" en una referencia significa "ninguna".
type Values map[string]string

// Clone copia el borrador.
func (v Values) Clone() Values {
	return maps.Clone(v)
}

// Schema campos de una entidad.
type Schema struct {
	Entity string
	Fields []Field
}

// Field busca un campo por nombre.
func (s Schema) Field(name string) (Field, bool) {
	i := slices.IndexFunc(s.Fields, func(f Field) bool { return f.Name == name })
	if i < 0 {
		return Field{}, false
	}
	return s.Fields[i], true
}

// Empty borrador con todos los campos de alta en su valor vacío.
func (s Schema) Empty() Values {
	out := make(Values, len(s.Fields))
	for _, f := range s.Fields {
		if f.Mode != UpdateOnly {
			out[f.Name] = ""
		}
	}
	return out
}

// ForUpdate deja solo los campos que se envían al actualizar.
func (s Schema) ForUpdate(v Values) Values {
	out := make(Values, len(v))
	for _, f := range s.Fields {
		if f.Mode == CreateOnly {
			continue
		}
		if raw, ok := v[f.Name]; ok {
			out[f.Name] = raw
		}
	}
	return out
}

// SetField valida raw contra los límites del campo y devuelve un borrador nuevo.
// Si el valor no es aceptable devuelve el borrador sin cambios y el error.
func (s Schema) SetField(v Values, name, raw string) (Values, error) {
	f, ok := s.Field(name)
	if !ok {
		return v, fmt.Errorf("%s.%s: %w", s.Entity, name, ErrUnknownField)
	}
	if err := f.check(raw); err != nil {
		return v, fmt.Errorf("%s.%s: %w", s.Entity, name, err)
	}
	out := v.Clone()
	if out == nil {
		out = Values{}
	}
	out[name] = raw
	return out, nil
}

func (f Field) check(raw string) error {
	switch f.Kind {
	case KindText:
		if f.MaxLength > 0 && utf8.RuneCountInString(raw) > f.MaxLength {
			return fmt.Errorf("%w: máximo %d caracteres", ErrOutOfBounds, f.MaxLength)
		}
	case KindNumber:
		if raw == "" {
			return nil
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: se espera un entero", ErrOutOfBounds)
		}
		return f.checkRange(decimal.NewFromInt(n))
	case KindDecimal:
		if raw == "" {
			return nil
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return fmt.Errorf("%w: se espera un número", ErrOutOfBounds)
		}
		if f.Scale > 0 && !d.Equal(d.Truncate(f.Scale)) {
			return fmt.Errorf("%w: máximo %d decimales", ErrOutOfBounds, f.Scale)
		}
		return f.checkRange(d)
	case KindBool:
		if _, err := ParseBool(raw); err != nil {
			return err
		}
	case KindReference:
		if raw == "" {
			return nil
		}
		if id, err := strconv.ParseInt(raw, 10, 64); err != nil || id <= 0 {
			return fmt.Errorf("%w: referencia inválida", ErrOutOfBounds)
		}
	case KindEnum:
		if raw != "" && !slices.Contains(f.Options, strings.ToUpper(raw)) {
			return fmt.Errorf("%w: opciones %s", ErrOutOfBounds, strings.Join(f.Options, ", "))
		}
	}
	return nil
}

func (f Field) checkRange(d decimal.Decimal) error {
	if f.Min != nil && d.LessThan(*f.Min) {
		return fmt.Errorf("%w: mínimo %s", ErrOutOfBounds, f.Min.String())
	}
	if f.Max != nil && d.GreaterThan(*f.Max) {
		return fmt.Errorf("%w: máximo %s", ErrOutOfBounds, f.Max.String())
	}
	return nil
}

// ParseBool acepta true/false, yes/no, si/no y 1/0. Vacío es false.
func ParseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "false", "no", "0", "n":
		return false, nil
	case "true", "yes", "si", "sí", "1", "y":
		return true, nil
	}
	return false, fmt.Errorf("%w: se espera sí/no", ErrOutOfBounds)
}

// Reference convierte el valor crudo de una referencia: "" da nil, nunca 0.
func Reference(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: referencia %q", ErrOutOfBounds, raw)
	}
	return &id, nil
}

// OptionalBool convierte un booleano crudo; un campo ausente da nil.
func OptionalBool(v Values, name string) (*bool, error) {
	raw, ok := v[name]
	if !ok {
		return nil, nil
	}
	b, err := ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Int convierte un entero crudo; vacío es 0.
func Int(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: entero %q", ErrOutOfBounds, raw)
	}
	return n, nil
}

// Decimal convierte un decimal crudo; vacío es cero.
func Decimal(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: número %q", ErrOutOfBounds, raw)
	}
	return d, nil
}

package usecase

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/ecommerce-backoffice/internal/domain"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/repository"
)

// Límites de paginación.
const (
	DefaultPageSize = 20
	MaxPageSize     = 1000
)

// invalidf envuelve domain.ErrInvalidInput con el detalle del campo.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// checkText valida longitud máxima (en runas) y obligatoriedad de un campo de texto.
func checkText(field, value string, max int, required bool) error {
	if required && strings.TrimSpace(value) == "" {
		return invalidf("%s es requerido", field)
	}
	if utf8.RuneCountInString(value) > max {
		return invalidf("%s supera %d caracteres", field, max)
	}
	return nil
}

func checkEmail(field, value string, max int) error {
	if err := checkText(field, value, max, true); err != nil {
		return err
	}
	at := strings.Index(value, "@")
	if at <= 0 || at == len(value)-1 {
		return invalidf("%s no es un email válido", field)
	}
	return nil
}

// normalizePage aplica valores por defecto y valida la ventana y el campo de orden.
func normalizePage(p repository.PageRequest, sortable []string) (repository.PageRequest, error) {
	if p.Page < 0 {
		return p, invalidf("page no puede ser negativo")
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		return p, invalidf("size máximo %d", MaxPageSize)
	}
	if p.Sort != nil && !slices.Contains(sortable, p.Sort.Field) {
		return p, invalidf("no se puede ordenar por %q", p.Sort.Field)
	}
	p.Search = strings.TrimSpace(p.Search)
	return p, nil
}

// firstErr devuelve el primer error no nulo.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

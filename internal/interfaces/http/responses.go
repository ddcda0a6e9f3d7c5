package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/repository"
)

// requestError error de formato en la petición (ruta, query o cuerpo).
type requestError struct {
	code    string
	message string
}

func (e *requestError) Error() string { return e.message }

var errInvalidBody = &requestError{code: "INVALID_BODY", message: "cuerpo inválido"}

// writeError traduce los errores de dominio a dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: reqErr.code, Message: reqErr.message})
	}
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrDuplicate):
		status, code = fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrConflict):
		status, code = fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		status, code = fiber.StatusForbidden, "FORBIDDEN"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

// parseBody decodifica el JSON del cuerpo en dest.
func parseBody(c *fiber.Ctx, dest any) error {
	if err := c.BodyParser(dest); err != nil {
		return errInvalidBody
	}
	return nil
}

// paramID lee un parámetro de ruta numérico positivo.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	if raw == "" {
		return 0, &requestError{code: "MISSING_ID", message: name + " es requerido"}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &requestError{code: "VALIDATION", message: name + " debe ser un entero positivo"}
	}
	return id, nil
}

// pageRequest lee ?page=&size=&sort=campo[,desc]&q=. El campo de orden lo valida el caso de uso.
func pageRequest(c *fiber.Ctx) (repository.PageRequest, error) {
	var p repository.PageRequest
	var err error
	if p.Page, err = queryInt(c, "page", 0); err != nil {
		return p, err
	}
	if p.Size, err = queryInt(c, "size", 0); err != nil {
		return p, err
	}
	if raw := strings.TrimSpace(c.Query("sort")); raw != "" {
		field, dir, _ := strings.Cut(raw, ",")
		p.Sort = &repository.Sort{
			Field: strings.TrimSpace(field),
			Desc:  strings.EqualFold(strings.TrimSpace(dir), "desc"),
		}
	}
	p.Search = c.Query("q")
	return p, nil
}

func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &requestError{code: "VALIDATION", message: key + " debe ser numérico"}
	}
	return n, nil
}

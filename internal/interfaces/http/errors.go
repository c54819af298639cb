package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/fakeshop-admin-api/internal/application/dto"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain"
)

var validate = validator.New()

// requestError cuerpo ilegible o que no pasa las reglas del DTO.
type requestError struct {
	code    string
	message string
}

func (e *requestError) Error() string { return e.message }

// errorStatus traduce la taxonomía de errores de dominio a código HTTP y código de error.
func errorStatus(err error) (int, string) {
	var reqErr *requestError
	switch {
	case errors.As(err, &reqErr):
		return fiber.StatusBadRequest, reqErr.code
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidIdentifier):
		return fiber.StatusBadRequest, "INVALID_ID"
	case errors.Is(err, domain.ErrMalformedReference):
		return fiber.StatusBadRequest, "MALFORMED_REFERENCE"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrBadRequest):
		return fiber.StatusBadRequest, "BAD_REQUEST"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// writeError responde con dto.ErrorResponse. Los 500 quedan en el log del request.
func writeError(c *fiber.Ctx, err error) error {
	status, code := errorStatus(err)
	if status >= fiber.StatusInternalServerError {
		zerolog.Ctx(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("error interno")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

// parseBody decodifica el JSON del cuerpo y ejecuta las reglas `validate` del DTO.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return &requestError{code: "INVALID_BODY", message: "cuerpo inválido: " + err.Error()}
	}
	if err := validate.Struct(out); err != nil {
		return &requestError{code: "VALIDATION", message: validationMessage(err)}
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return "campos inválidos: " + strings.Join(parts, ", ")
}

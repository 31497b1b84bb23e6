package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/pkg/logger"
)

// Mensajes de error expuestos al cliente.
const (
	MsgInvalidBody        = "Cuerpo inválido"
	MsgConflict           = "Usuario o email ya existe"
	MsgInvalidCredentials = "Credenciales inválidas"
	MsgTokenRequired      = "Token requerido"
	MsgTokenInvalid       = "Token inválido"
	MsgUserNotFound       = "Usuario no encontrado"
	MsgItemNotFound       = "Item no encontrado"
	MsgInternal           = "Error interno del servidor"
	MsgUnexpected         = "Algo salió mal!"
)

// writeError traduce un error de dominio a status + ErrorResponse. Los errores no tipados
// se registran y se responden como 500 sin filtrar su detalle.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	status, body := classify(err)
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).
			Str("path", c.Path()).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("error interno")
	}
	return c.Status(status).JSON(body)
}

func classify(err error) (int, dto.ErrorResponse) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: ve.Message}
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: MsgInvalidBody}
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "CONFLICT", Message: MsgConflict}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: MsgInvalidCredentials}
	case errors.Is(err, domain.ErrUnauthenticated):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "MISSING_TOKEN", Message: MsgTokenRequired}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "INVALID_TOKEN", Message: MsgTokenInvalid}
	case errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: MsgUserNotFound}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: MsgItemNotFound}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: MsgInternal}
	}
}

// ErrorHandler manejador global de Fiber: respeta *fiber.Error (404 de ruta, 405, etc.) y
// responde 500 genérico para lo demás, incluidos los panics recuperados.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
		}
		log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: MsgUnexpected})
	}
}

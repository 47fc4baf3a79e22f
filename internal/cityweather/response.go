package cityweather

import (
	"errors"
	"github.com/gofiber/fiber/v2"
)

const successMessage = "success"

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func ok(data any) APIResponse {
	return APIResponse{Code: fiber.StatusOK, Message: successMessage, Data: data}
}

func fail(msg string, code int) APIResponse {
	if code < 400 || code > 499 {
		code = fiber.StatusBadRequest
	}
	return APIResponse{Code: code, Message: msg}
}

func errorResponse(msg string, code int) APIResponse {
	if code < 500 {
		code = fiber.StatusInternalServerError
	}
	return APIResponse{Code: code, Message: msg}
}

// ErrorHandler writes errors returned by handlers, middleware and fiber itself
// as an envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal server error"

	var codeErr CodeError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &codeErr):
		code, msg = codeErr.code, codeErr.msg
	case errors.As(err, &fiberErr):
		code, msg = fiberErr.Code, fiberErr.Message
	}

	resp := errorResponse(msg, code)
	if code < 500 {
		resp = fail(msg, code)
	}
	return c.Status(resp.Code).JSON(resp)
}

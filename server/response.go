package server

import (
	"github.com/gofiber/fiber/v2"

	currency "github.com/malusev998/currency-converter"
)

type (
	SuccessResponse struct {
		Status string                    `json:"status"`
		Result currency.ConversionResult `json:"result"`
	}

	ErrorResponse struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
)

func successResponseJSON(c *fiber.Ctx, result currency.ConversionResult) error {
	return c.Status(fiber.StatusOK).JSON(SuccessResponse{
		Status: "success",
		Result: result,
	})
}

func errorResponseJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Status:  "error",
		Message: message,
	})
}

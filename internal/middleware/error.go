package middleware

import (
	"errors"
	"net/http"

	"dsa-tutor/internal/domain"
	"dsa-tutor/internal/dto"
	"dsa-tutor/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler is a centralized error handling middleware
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		logger := logger.Get().With(
			zap.String("path", c.Path()),
			zap.String("request_id", RequestIDFrom(c)),
		)

		// Undecodable model output carries the raw reply back to the client
		var parseErr *domain.ParseError
		if errors.As(err, &parseErr) {
			logger.Error("Model response could not be parsed",
				zap.String("code", string(parseErr.Code)),
				zap.Error(parseErr.Err),
			)
			return c.Status(http.StatusInternalServerError).JSON(dto.ParseErrorResponse{
				Error:       domain.MsgParseFailure,
				RawResponse: parseErr.RawResponse,
			})
		}

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			msg := "Domain error occurred"
			if domain.IsLLMServiceError(err) {
				msg = "Model service call failed"
			}
			logger.Error(msg,
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Error(domainErr.Err),
			)
			return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: domainErr.Message,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			logger.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{
				Error: fiberErr.Message,
			})
		}

		logger.Error("Unknown error occurred", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}
}

package handlers

import (
	"errors"
	request "brightcover/internal/adapter/http/dto/request"
	response "brightcover/internal/adapter/http/dto/response"
	"brightcover/internal/premium"
	"brightcover/internal/usecase"
	"brightcover/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Request body must be valid JSON", http.StatusBadRequest)

// QuoteHandler handles the public quote-submission endpoints.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote accepts a quote submission, estimates the premium, stores the
// lead and returns the reference the customer can follow up with.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	draft, violations := payload.Normalize()
	if len(violations) > 0 {
		appErr := pkg.NewValidationError("Validation failed", violations, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	draft.SourceIP = c.ClientIP()
	draft.UserAgent = c.Request.UserAgent()

	created, err := h.usecase.Submit(c.Request.Context(), draft)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteRequest(created))
}

// EstimatePremium returns the premium for a draft without persisting it.
func (h *QuoteHandler) EstimatePremium(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	draft, violations := payload.Normalize()
	if len(violations) > 0 {
		appErr := pkg.NewValidationError("Validation failed", violations, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quote, err := h.usecase.Estimate(draft)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDuplicateSubmission):
		return pkg.NewDomainErrorSimple("DUPLICATE_SUBMISSION", "A quote for this product was already submitted recently, please wait before retrying", http.StatusTooManyRequests)
	case errors.Is(err, premium.ErrUnknownProduct),
		errors.Is(err, premium.ErrUnknownPlan),
		errors.Is(err, premium.ErrAgeOutOfRange),
		errors.Is(err, premium.ErrCoverageRange):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidReference):
		return pkg.NewDomainErrorSimple("INVALID_REFERENCE", "Invalid reference", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown status value", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status change is not allowed from the current status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

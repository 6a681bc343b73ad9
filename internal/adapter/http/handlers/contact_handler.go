package handlers

import (
	"errors"
	request "brightcover/internal/adapter/http/dto/request"
	response "brightcover/internal/adapter/http/dto/response"
	"brightcover/internal/usecase"
	"brightcover/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errInvalidContactPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Request body must be valid JSON", http.StatusBadRequest)

// ContactHandler handles the public contact-form endpoint.

type ContactHandler struct {
	usecase usecase.IContactUseCase
}

func NewContactHandler(uc usecase.IContactUseCase) *ContactHandler {
	return &ContactHandler{usecase: uc}
}

// CreateContact accepts a contact message and returns the triage reference.
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContactPayload.HTTPStatus, errInvalidContactPayload.ToHTTPError())
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
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromContactMessage(created))
}

func mapContactError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReference):
		return pkg.NewDomainErrorSimple("INVALID_REFERENCE", "Invalid reference", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContactNotFound):
		return pkg.NewDomainErrorSimple("CONTACT_NOT_FOUND", "Contact message not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown status value", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status change is not allowed from the current status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	request "brightcover/internal/adapter/http/dto/request"
	response "brightcover/internal/adapter/http/dto/response"
	"brightcover/internal/domain/entities"
	"brightcover/internal/usecase"
	"brightcover/pkg"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Email and password are required", http.StatusBadRequest)
	errInvalidAdminPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Request body must be valid JSON", http.StatusBadRequest)
)

// AdminHandler serves the staff console: login, lead listing and triage.

type AdminHandler struct {
	authUseCase    usecase.IAuthUseCase
	quoteUseCase   usecase.IQuoteUseCase
	contactUseCase usecase.IContactUseCase
}

func NewAdminHandler(auth usecase.IAuthUseCase, quotes usecase.IQuoteUseCase, contacts usecase.IContactUseCase) *AdminHandler {
	return &AdminHandler{authUseCase: auth, quoteUseCase: quotes, contactUseCase: contacts}
}

// Login exchanges admin credentials for a bearer token.
func (h *AdminHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	token, expiresAt, err := h.authUseCase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{Success: true, Token: token, ExpiresAt: expiresAt})
}

// ListQuotes returns a filtered page of quote requests.
func (h *AdminHandler) ListQuotes(c *gin.Context) {
	filter := entities.QuoteFilter{
		Status:  entities.QuoteStatus(c.Query("status")),
		Product: entities.ProductType(c.Query("product")),
		Limit:   queryInt(c, "limit"),
		Offset:  queryInt(c, "offset"),
	}
	filter.From = queryTime(c, "from")
	filter.To = queryTime(c, "to")

	quotes, err := h.quoteUseCase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ToQuoteListResponse(quotes))
}

// GetQuote returns one quote request by its reference.
func (h *AdminHandler) GetQuote(c *gin.Context) {
	q, err := h.quoteUseCase.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.QuoteDetailResponse{Success: true, Quote: response.ToQuoteDetail(q)})
}

// UpdateQuote moves a quote request through the follow-up pipeline.
func (h *AdminHandler) UpdateQuote(c *gin.Context) {
	var payload request.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdminPayload.HTTPStatus, errInvalidAdminPayload.ToHTTPError())
		return
	}

	updated, err := h.quoteUseCase.UpdateStatus(
		c.Request.Context(),
		c.Param("reference"),
		entities.QuoteStatus(payload.NormalizedStatus()),
		payload.Notes,
	)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.QuoteDetailResponse{Success: true, Quote: response.ToQuoteDetail(updated)})
}

// QuoteSummary returns the dashboard counters.
func (h *AdminHandler) QuoteSummary(c *gin.Context) {
	summary, err := h.quoteUseCase.Summary(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ToSummaryResponse(summary))
}

// ListContacts returns a filtered page of contact messages.
func (h *AdminHandler) ListContacts(c *gin.Context) {
	filter := entities.ContactFilter{
		Status: entities.ContactStatus(c.Query("status")),
		Limit:  queryInt(c, "limit"),
		Offset: queryInt(c, "offset"),
	}
	filter.From = queryTime(c, "from")
	filter.To = queryTime(c, "to")

	msgs, err := h.contactUseCase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ToContactListResponse(msgs))
}

// UpdateContact moves a contact message through triage.
func (h *AdminHandler) UpdateContact(c *gin.Context) {
	var payload request.UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdminPayload.HTTPStatus, errInvalidAdminPayload.ToHTTPError())
		return
	}

	updated, err := h.contactUseCase.UpdateStatus(
		c.Request.Context(),
		c.Param("reference"),
		entities.ContactStatus(payload.NormalizedStatus()),
	)
	if err != nil {
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ContactDetailResponse{Success: true, Contact: response.ToContactDetail(updated)})
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrLoginDisabled):
		return pkg.NewDomainErrorSimple("LOGIN_DISABLED", "Admin login is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}

// queryTime accepts RFC3339 or a bare date. Unparseable values are treated
// as absent rather than failing the listing.
func queryTime(c *gin.Context, key string) time.Time {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	return time.Time{}
}

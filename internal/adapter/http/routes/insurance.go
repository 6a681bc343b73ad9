package routes

import (
	"net/http"

	"brightcover/internal/adapter/http/dto/response"
	"brightcover/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathContact  = "/contact"
	PathAdmin    = "/admin"
	PathContacts = "/contacts"
)

func addHealthRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, response.HealthResponse{
			Status:  "OK",
			Service: "brightcover-api",
			Version: "1.0.0",
		})
	})
}

func addInsuranceRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, contactHandler *handlers.ContactHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.POST("/estimate", quoteHandler.EstimatePremium)
	}

	rg.POST(PathContact, contactHandler.CreateContact)
}

func addAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminHandler, jwtSecret string) {
	admin := rg.Group(PathAdmin)
	admin.POST("/login", adminHandler.Login)

	protected := admin.Group("", handlers.RequireAdmin(jwtSecret))
	{
		protected.GET(PathQuotes, adminHandler.ListQuotes)
		protected.GET(PathQuotes+"/summary", adminHandler.QuoteSummary)
		protected.GET(PathQuotes+"/:reference", adminHandler.GetQuote)
		protected.PATCH(PathQuotes+"/:reference", adminHandler.UpdateQuote)
		protected.GET(PathContacts, adminHandler.ListContacts)
		protected.PATCH(PathContacts+"/:reference", adminHandler.UpdateContact)
	}
}

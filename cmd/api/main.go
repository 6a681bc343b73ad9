package main

import (
	_ "brightcover/docs"
	"brightcover/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           BrightCover Lead Capture API
// @version         1.0
// @description     Insurance quote and contact capture service backed by DynamoDB.

// @contact.name   BrightCover Engineering
// @contact.email  engineering@brightcover.in

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}

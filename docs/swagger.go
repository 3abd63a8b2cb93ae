// Package docs provides Swagger documentation for the API.
package docs

// @title Lecture Content API
// @version 1.0
// @description Turns course lectures into narrated podcasts and PowerPoint decks stored in Google Drive
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.one-green.io/support
// @contact.email support@one-green.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Enter `ApiKey ` followed by your API key (e.g. "ApiKey <key>")

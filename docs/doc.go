// Package docs provides generated OpenAPI documentation.
//
// Promptgen API
//
//	@title			Promptgen API
//	@version		1.0
//	@description	Prompt generator API for themes, sessions, and usage rankings.
//	@termsOfService	http://swagger.io/terms/
//
//	@contact.name	API Support
//	@contact.url	https://github.com/jackzampolin/promptgen
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
package docs

//go:generate swag init -g ../cmd/promptgen/serve.go -o ./swagger --parseDependency --parseInternal

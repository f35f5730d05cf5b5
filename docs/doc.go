// Package docs provides generated OpenAPI documentation.
//
// Binder API
//
//	@title			Binder API
//	@version		1.0
//	@description	Document-assembly API: merge PDFs and images into one bundle with an optional index page and page-number footers.
//
//	@contact.name	API Support
//	@contact.url	https://github.com/kian234-lab/smart-pdf-merger
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http
package docs

//go:generate swag init -g ../cmd/binder/serve.go -o ./swagger --parseDependency --parseInternal

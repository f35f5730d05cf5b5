// Package api defines the endpoint abstraction shared by the HTTP
// server and the CLI: every operation is registered once and exposed
// both as a route and as a cobra command that calls it over HTTP.
package api

import (
	"net/http"

	"github.com/spf13/cobra"
)

// Endpoint defines both an HTTP route and its corresponding CLI command.
// This provides a single source of truth for API operations.
type Endpoint interface {
	// Route returns the HTTP method, path, and handler for this endpoint.
	Route() (method, path string, handler http.HandlerFunc)

	// Command returns a Cobra command that calls this endpoint via HTTP.
	// getServerURL is called at runtime to get the server URL (deferred
	// evaluation). May be nil for endpoints with no CLI form.
	Command(getServerURL func() string) *cobra.Command
}

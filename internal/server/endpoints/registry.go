package endpoints

import (
	"github.com/kian234-lab/smart-pdf-merger/internal/api"
)

// All returns all endpoint instances.
func All() []api.Endpoint {
	return []api.Endpoint{
		&HealthEndpoint{},
		&LimitsEndpoint{},
		&BundleEndpoint{},

		// Static last: its wildcard route catches everything else.
		&StaticEndpoint{},
	}
}

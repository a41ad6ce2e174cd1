package httpapi

import (
	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/pkg/types"
)

// maxBodyBytes controls the maximum allowed request body size for JSON endpoints.
// Default remains 1 MiB.
var maxBodyBytes int64 = 1 << 20

// SetMaxBodyBytes allows configuring the maximum request body size.
func SetMaxBodyBytes(n int64) {
	if n <= 0 {
		maxBodyBytes = 1 << 20
		return
	}
	maxBodyBytes = n
}

// CORS configuration (opt-in). If disabled, no CORS middleware is added.
var (
	corsEnabled        bool
	corsAllowedOrigins []string
	corsAllowedMethods []string
	corsAllowedHeaders []string
)

// SetCORSOptions configures CORS behavior for the HTTP server. The Streamlit
// UIs call the API from the browser, so insightd normally enables this with
// their origins.
func SetCORSOptions(enabled bool, origins, methods, headers []string) {
	corsEnabled = enabled
	corsAllowedOrigins = append([]string(nil), origins...)
	corsAllowedMethods = append([]string(nil), methods...)
	corsAllowedHeaders = append([]string(nil), headers...)
}

// statusInfo is the static half of the /status payload; Ready is probed per
// request.
var statusInfo types.ServiceStatus

// SetStatusInfo records the daemon configuration reported by /status.
func SetStatusInfo(info types.ServiceStatus) {
	statusInfo = info
}

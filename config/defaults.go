package config

import "time"

// DefaultBaseURL is the Planning Center API host.
const DefaultBaseURL = "https://api.planningcenteronline.com"

// DefaultAPIVersions maps app name to the X-PCO-API-Version the models
// were written against.
var DefaultAPIVersions = map[string]string{
	"services": "2018-11-01",
	"groups":   "2023-07-10",
	"people":   "2024-09-12",
}

const (
	DefaultPerPage           = 25
	DefaultConcurrency       = 4
	DefaultTimeout           = 30 * time.Second
	DefaultCacheTTL          = 5 * time.Minute
	DefaultMaxResponseSizeKB = 50
	DefaultLogLevel          = "info"
)

// Credential environment variables. The first set variable of each list wins.
var (
	EnvApplicationID = []string{"PCO_APPLICATION_ID", "CLIENT_ID"}
	EnvSecret        = []string{"PCO_SECRET", "CLIENT_SECRET"}
	EnvAccessToken   = []string{"PCO_ACCESS_TOKEN"}
	EnvBaseURL       = []string{"PCO_BASE_URL"}
)

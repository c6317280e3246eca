package config

import (
	"net/url"
	"strings"
)

const (
	// ApiUrlVar overrides the subscription API base URL when set.
	ApiUrlVar = "SIGNUP_API_URL"

	// EnvVar names the deployment environment, e.g. "production".
	EnvVar = "SIGNUP_ENV"

	ProductionEnv = "production"

	ProductionApiUrl  = "https://api.gridironfc.com"
	DevelopmentApiUrl = "http://localhost:8788"
)

// UrlResolver supplies the configured subscription API base URL.
//
// BaseUrl returns an absolute URL without a trailing path; resolution policy
// (environment variable present vs. absent, production vs. development) is
// entirely the resolver's concern and opaque to its callers.
type UrlResolver interface {
	BaseUrl() string
	Production() bool
}

// EnvResolver resolves the API base URL from the process environment.
//
// Getenv is injected so tests never mutate process-level environment state.
type EnvResolver struct {
	Getenv func(string) string
}

func (r *EnvResolver) BaseUrl() string {
	if baseUrl := r.Getenv(ApiUrlVar); baseUrl != "" {
		return baseUrl
	} else if r.Production() {
		return ProductionApiUrl
	}
	return DevelopmentApiUrl
}

func (r *EnvResolver) Production() bool {
	return r.Getenv(EnvVar) == ProductionEnv
}

// Host suffixes used by the static front end's hosting providers. A base URL
// resolving to one of these almost certainly points at the web deployment
// instead of the API.
var frontendHostSuffixes = []string{
	".pages.dev",
	".netlify.app",
	".vercel.app",
}

// Hosts serving the game's web front end itself.
var frontendHosts = map[string]bool{
	"gridironfc.com":     true,
	"www.gridironfc.com": true,
}

// LooksLikeFrontendHost reports whether a configured base URL resembles a
// front-end deployment host rather than the API.
//
// This is string pattern matching over hosting-provider naming conventions.
// It exists only to drive a diagnostic log line when a misrouted base URL
// manifests as a 405; it is not a correctness guarantee, and a misconfigured
// URL it fails to match simply goes undiagnosed.
func LooksLikeFrontendHost(rawUrl string) bool {
	parsed, err := url.Parse(rawUrl)
	if err != nil || parsed.Host == "" {
		return false
	}

	host := parsed.Hostname()
	if frontendHosts[host] {
		return true
	}
	for _, suffix := range frontendHostSuffixes {
		if strings.HasSuffix(host, suffix) {
			return true
		}
	}
	return false
}

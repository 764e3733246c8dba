package wrike

import (
	"crypto/tls"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/oauth2"
)

// DefaultBaseURL is the public Wrike API v4 endpoint.
const DefaultBaseURL = "https://www.wrike.com/api/v4/"

// Config contains configuration for a Wrike API client.
//
// Example configuration (HCL):
//
//	wrike {
//	  base_url   = "https://www.wrike.com/api/v4/"
//	  auth_token = env("WRIKE_TOKEN")
//	  timeout    = "30s"
//	  tls_verify = true
//	}
type Config struct {
	// BaseURL is the API root every request path is appended to.
	// Example: "https://www.wrike.com/api/v4/"
	BaseURL string `hcl:"base_url,optional" json:"baseUrl"`

	// AuthToken is a permanent access token from the Wrike dashboard.
	// It is sent as a Bearer token on every request.
	AuthToken string `hcl:"auth_token,optional" json:"-"` // Don't marshal auth token to JSON

	// TLSVerify controls TLS certificate verification.
	// Set to false only for testing against self-signed endpoints.
	TLSVerify *bool `hcl:"tls_verify,optional" json:"tlsVerify,omitempty"`

	// Timeout bounds each request, including reading the body.
	// Default: 30 seconds
	Timeout time.Duration `json:"timeout,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults. AuthToken is left
// empty.
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		BaseURL:   DefaultBaseURL,
		TLSVerify: &tlsVerify,
		Timeout:   30 * time.Second,
	}
}

// applyDefaults fills zero-valued fields from DefaultConfig.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = defaults.BaseURL
	}
	if c.TLSVerify == nil {
		c.TLSVerify = defaults.TLSVerify
	}
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return validation.Errors{
		"base_url":   validation.Validate(c.BaseURL, validation.Required, validation.By(httpURL)),
		"auth_token": validation.Validate(c.AuthToken, validation.Required),
		"timeout":    validation.Validate(c.Timeout, validation.By(positiveDuration)),
	}.Filter()
}

func httpURL(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return errors.New("must be a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("must use http or https scheme")
	}
	if u.Host == "" {
		return errors.New("must include a host")
	}
	return nil
}

func positiveDuration(value interface{}) error {
	d, _ := value.(time.Duration)
	if d <= 0 {
		return errors.New("must be positive")
	}
	return nil
}

// normalizedBaseURL returns BaseURL with exactly one trailing slash so that
// request paths can be appended directly.
func (c *Config) normalizedBaseURL() string {
	return strings.TrimRight(c.BaseURL, "/") + "/"
}

// NewHTTPClient creates an HTTP client that authenticates every request
// with the configured bearer token.
func (c *Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	// Configure TLS verification
	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	token := &oauth2.Token{
		AccessToken: c.AuthToken,
		TokenType:   "Bearer",
	}

	return &http.Client{
		Timeout: c.Timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(token),
			Base:   transport,
		},
	}
}

// Package config resolves the small set of runtime settings for both processes.
// Every value has a hardcoded default; environment variables (optionally read
// from a .env file) override them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultBackendPort  = "5000"
	DefaultFrontendPort = "3000"
	DefaultAPIURL       = "http://localhost:5000/api"
)

// Environment variable names.
const (
	EnvBackendPort  = "PORT"
	EnvFrontendPort = "FRONTEND_PORT"
	EnvAPIURL       = "API_URL"
)

// Backend holds the API server settings.
type Backend struct {
	Port string
}

// Addr is the listen address on all interfaces.
func (b Backend) Addr() string {
	return ":" + b.Port
}

// Frontend holds the Client View process settings.
type Frontend struct {
	Port   string
	APIURL string
}

// Addr is the listen address on all interfaces.
func (f Frontend) Addr() string {
	return ":" + f.Port
}

// LoadDotEnv reads the given .env files (default ".env") into the environment
// without overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", name, err)
		}
	}
	return nil
}

// LoadBackend returns the API server settings.
func LoadBackend() (Backend, error) {
	port, err := portFromEnv(EnvBackendPort, DefaultBackendPort)
	if err != nil {
		return Backend{}, err
	}
	return Backend{Port: port}, nil
}

// LoadFrontend returns the Client View settings.
func LoadFrontend() (Frontend, error) {
	port, err := portFromEnv(EnvFrontendPort, DefaultFrontendPort)
	if err != nil {
		return Frontend{}, err
	}
	apiURL := getenv(EnvAPIURL, DefaultAPIURL)
	u, err := url.Parse(apiURL)
	if err != nil {
		return Frontend{}, fmt.Errorf("%s: %w", EnvAPIURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return Frontend{}, fmt.Errorf("%s: %q is not an absolute http(s) URL", EnvAPIURL, apiURL)
	}
	return Frontend{Port: port, APIURL: apiURL}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func portFromEnv(key, fallback string) (string, error) {
	port := getenv(key, fallback)
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return "", fmt.Errorf("%s: invalid port %q", key, port)
	}
	return port, nil
}

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jongio/urlprefix/hostcheck"
	"github.com/jongio/urlprefix/logutil"
	"github.com/jongio/urlprefix/prefix"
	"github.com/jongio/urlprefix/security"
)

const (
	// EnvConfig overrides the default configuration file path.
	EnvConfig = "URLPREFIX_CONFIG"
	// DefaultFileName is used when EnvConfig is not set.
	DefaultFileName = "urlprefix.yaml"
)

var (
	// ErrInvalidEndpoint indicates an endpoint entry that cannot build a prefix.
	ErrInvalidEndpoint = errors.New("invalid endpoint")
	// ErrDuplicateEndpoint indicates two endpoints share a name.
	ErrDuplicateEndpoint = errors.New("duplicate endpoint")
)

var log = logutil.NewLogger("config")

// Endpoint is a named, validated prefix definition.
type Endpoint struct {
	Name       string
	Protocol   prefix.Protocol
	Host       hostcheck.Host
	Port       prefix.Port
	Path       string
	AllowLocal bool
}

// Prefix builds the endpoint's URL prefix.
func (e Endpoint) Prefix() string {
	return prefix.BuildValidated(e.Protocol, e.Host, e.Port, e.Path)
}

// Config is a loaded set of endpoints in file order.
type Config struct {
	Endpoints []Endpoint
	byName    map[string]int
}

// Lookup returns the endpoint with the given name.
func (c *Config) Lookup(name string) (Endpoint, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Endpoint{}, false
	}
	return c.Endpoints[i], true
}

// Names returns the endpoint names in file order.
func (c *Config) Names() []string {
	names := make([]string, len(c.Endpoints))
	for i, e := range c.Endpoints {
		names[i] = e.Name
	}
	return names
}

// rawEndpoint mirrors the YAML layout before validation.
type rawEndpoint struct {
	Name       string `yaml:"name"`
	Protocol   string `yaml:"protocol"`
	Host       string `yaml:"host"`
	Port       *int   `yaml:"port"`
	Path       string `yaml:"path"`
	AllowLocal bool   `yaml:"allowLocal"`
}

type rawConfig struct {
	Endpoints []rawEndpoint `yaml:"endpoints"`
}

// DefaultPath returns $URLPREFIX_CONFIG if set, otherwise "urlprefix.yaml".
func DefaultPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return DefaultFileName
}

// Load reads and validates the configuration file at path.
// A group- or world-writable file is loaded with a warning.
func Load(path string) (*Config, error) {
	if err := security.ValidatePath(path); err != nil {
		return nil, fmt.Errorf("invalid config path: %w", err)
	}

	// #nosec G304 -- Path validated by security.ValidatePath
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := security.ValidateFilePermissions(path); errors.Is(err, security.ErrInsecureFilePermissions) {
		log.Warn("config file is writable by other users", "path", path, "container", security.IsContainerEnvironment())
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug("loaded config", "path", path, "endpoints", len(cfg.Endpoints))
	return cfg, nil
}

// Parse decodes and validates YAML configuration data. Empty input yields
// a Config with no endpoints.
func Parse(data []byte) (*Config, error) {
	var raw rawConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := &Config{
		Endpoints: make([]Endpoint, 0, len(raw.Endpoints)),
		byName:    make(map[string]int, len(raw.Endpoints)),
	}

	for i, re := range raw.Endpoints {
		e, err := re.resolve()
		if err != nil {
			if re.Name == "" {
				return nil, fmt.Errorf("endpoint #%d: %w", i+1, err)
			}
			return nil, fmt.Errorf("endpoint %q: %w", re.Name, err)
		}
		if _, exists := cfg.byName[e.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEndpoint, e.Name)
		}
		cfg.byName[e.Name] = len(cfg.Endpoints)
		cfg.Endpoints = append(cfg.Endpoints, e)
		log.WithEndpoint(e.Name).Debug("endpoint resolved", "prefix", e.Prefix())
	}

	return cfg, nil
}

func (re rawEndpoint) resolve() (Endpoint, error) {
	if err := security.ValidateEndpointName(re.Name); err != nil {
		return Endpoint{}, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}

	protocol, err := prefix.ParseProtocol(re.Protocol)
	if err != nil {
		return Endpoint{}, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}

	host, err := hostcheck.ParseHost(re.Host, hostcheck.Options{AllowLocal: re.AllowLocal, AllowPort: true})
	if err != nil {
		return Endpoint{}, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}

	port := prefix.NoPort
	if re.Port != nil {
		if *re.Port < 1 || *re.Port > 65535 {
			return Endpoint{}, fmt.Errorf("%w: %w: %d must be between 1 and 65535", ErrInvalidEndpoint, hostcheck.ErrInvalidPort, *re.Port)
		}
		port = prefix.PortOf(uint16(*re.Port))
	}

	return Endpoint{
		Name:       re.Name,
		Protocol:   protocol,
		Host:       host,
		Port:       port,
		Path:       re.Path,
		AllowLocal: re.AllowLocal,
	}, nil
}

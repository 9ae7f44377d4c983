// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/time/rate"

	"github.com/jongio/urlprefix/hostcheck"
	"github.com/jongio/urlprefix/logutil"
	"github.com/jongio/urlprefix/prefix"
)

const (
	// DefaultRateLimit is the sustained number of tool calls allowed per second.
	DefaultRateLimit = 10
	// DefaultBurst is the number of tool calls allowed in a burst.
	DefaultBurst = 20
)

// Options configures a Server.
type Options struct {
	Name    string
	Version string
	// RateLimit is tool calls per second; zero uses DefaultRateLimit.
	RateLimit rate.Limit
	// Burst is the burst size; zero uses DefaultBurst.
	Burst int
}

// Server serves the prefix tools over MCP.
type Server struct {
	mcp     *server.MCPServer
	limiter *rate.Limiter
	log     *logutil.ComponentLogger
}

// New creates a Server with build_prefix and parse_url registered.
func New(opts Options) *Server {
	if opts.RateLimit == 0 {
		opts.RateLimit = DefaultRateLimit
	}
	if opts.Burst == 0 {
		opts.Burst = DefaultBurst
	}

	s := &Server{
		mcp:     server.NewMCPServer(opts.Name, opts.Version, server.WithToolCapabilities(false), server.WithRecovery()),
		limiter: rate.NewLimiter(opts.RateLimit, opts.Burst),
		log:     logutil.NewLogger("mcp"),
	}

	s.mcp.AddTool(buildPrefixTool(), s.handleBuildPrefix)
	s.mcp.AddTool(parseURLTool(), s.handleParseURL)

	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// ServeStdio serves requests on stdin/stdout until stdin is closed.
func (s *Server) ServeStdio() error {
	s.log.Info("serving MCP over stdio")
	return server.ServeStdio(s.mcp)
}

func buildPrefixTool() mcp.Tool {
	return mcp.NewTool("build_prefix",
		mcp.WithDescription("Build a URL prefix <scheme>://<host>[:<port>][/<path>]. The port is omitted when it equals the protocol's default port."),
		mcp.WithString("protocol", mcp.Required(),
			mcp.Description("Protocol: "+prefix.ProtocolNames()),
		),
		mcp.WithString("host", mcp.Required(),
			mcp.Description("Domain name or IP address, optionally with :port"),
		),
		mcp.WithNumber("port",
			mcp.Description("Port number (1-65535). Overrides a port embedded in host."),
		),
		mcp.WithString("path",
			mcp.Description("Path appended after a single slash"),
		),
		mcp.WithString("validate",
			mcp.Description("Host validation: "+prefix.ValidationNames()+" (default host)"),
			mcp.Enum("none", "domain", "ipv4", "ipv6", "host"),
		),
		mcp.WithBoolean("allowLocal",
			mcp.Description("Accept localhost and loopback or private addresses"),
		),
	)
}

func parseURLTool() mcp.Tool {
	return mcp.NewTool("parse_url",
		mcp.WithDescription("Validate an absolute URL and return its prefix with the default port removed"),
		mcp.WithString("url", mcp.Required(),
			mcp.Description("Absolute http:// or https:// URL without query or fragment"),
		),
		mcp.WithBoolean("allowFtp",
			mcp.Description("Also accept ftp:// URLs"),
		),
		mcp.WithBoolean("allowLocal",
			mcp.Description("Accept localhost and loopback or private addresses"),
		),
	)
}

// BuildResult is the build_prefix tool result.
type BuildResult struct {
	Prefix   string  `json:"prefix"`
	Protocol string  `json:"protocol"`
	Host     string  `json:"host"`
	Port     *uint16 `json:"port,omitempty"`
	Path     string  `json:"path,omitempty"`
}

// ParseResult is the parse_url tool result.
type ParseResult struct {
	Prefix string  `json:"prefix"`
	Scheme string  `json:"scheme"`
	Host   string  `json:"host"`
	Port   *uint16 `json:"port,omitempty"`
	Path   string  `json:"path,omitempty"`
}

func (s *Server) checkRateLimit(tool string) error {
	if !s.limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for tool %q, please wait before retrying", tool)
	}
	return nil
}

func (s *Server) handleBuildPrefix(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := s.log.WithOperation("build_prefix")
	if err := s.checkRateLimit("build_prefix"); err != nil {
		log.Warn("rate limited")
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := getArgsMap(request)

	protocolName, ok := getStringParam(args, "protocol")
	if !ok {
		return mcp.NewToolResultError("protocol is required"), nil
	}
	protocol, err := prefix.ParseProtocol(protocolName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	host, ok := getStringParam(args, "host")
	if !ok || host == "" {
		return mcp.NewToolResultError("host is required"), nil
	}

	port := prefix.NoPort
	n, hasPort, err := getPortParam(args, "port")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if hasPort {
		port = prefix.PortOf(n)
	}

	path, _ := getStringParam(args, "path")

	validation := prefix.ValidateHost
	if name, ok := getStringParam(args, "validate"); ok && name != "" {
		validation, err = prefix.ParseValidation(name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	result, err := prefix.BuildChecked(protocol, host, port, path, validation, getBoolParam(args, "allowLocal"))
	if err != nil {
		log.Debug("rejected host", "host", host, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	out := BuildResult{
		Prefix:   result,
		Protocol: protocol.Name(),
		Host:     host,
		Path:     path,
	}
	if hasPort {
		out.Port = &n
	}

	log.Debug("built prefix", "prefix", result)
	return marshalToolResult(out)
}

func (s *Server) handleParseURL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := s.log.WithOperation("parse_url")
	if err := s.checkRateLimit("parse_url"); err != nil {
		log.Warn("rate limited")
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := getArgsMap(request)

	rawURL, ok := getStringParam(args, "url")
	if !ok || rawURL == "" {
		return mcp.NewToolResultError("url is required"), nil
	}

	opts := hostcheck.Options{AllowLocal: getBoolParam(args, "allowLocal")}
	parse := hostcheck.ParseHTTPURL
	if getBoolParam(args, "allowFtp") {
		parse = hostcheck.ParseHTTPFTPURL
	}

	u, err := parse(rawURL, opts)
	if err != nil {
		log.Debug("rejected url", "url", rawURL, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	out := ParseResult{
		Prefix: prefix.BuildWithValidatedURL(u),
		Scheme: u.Scheme(),
		Host:   u.Host(),
		Path:   u.Path(),
	}
	if n, ok := u.Port(); ok {
		out.Port = &n
	}

	return marshalToolResult(out)
}

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

var (
	// ErrInvalidPath indicates a path contains invalid characters or patterns.
	ErrInvalidPath = errors.New("invalid path")
	// ErrPathTraversal indicates a path traversal attack attempt.
	ErrPathTraversal = errors.New("path traversal detected")
	// ErrInvalidEndpointName indicates an invalid endpoint name.
	ErrInvalidEndpointName = errors.New("invalid endpoint name")
	// ErrInsecureFilePermissions indicates a file has insecure (group- or world-writable) permissions.
	ErrInsecureFilePermissions = errors.New("insecure file permissions")

	// endpointNamePattern: alphanumeric start, then alphanumeric, underscore, hyphen, or dot.
	// Max 63 characters to align with DNS label limits.
	endpointNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]{0,62}$`)
)

// ValidatePath checks if a path is safe to read.
// It rejects parent directory references, including ones introduced by symbolic links.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	if strings.Contains(path, "..") {
		return fmt.Errorf("%w: path contains parent directory reference", ErrPathTraversal)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path: %w", ErrInvalidPath, err)
	}
	cleanPath := filepath.Clean(absPath)

	resolvedPath, err := filepath.EvalSymlinks(cleanPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("%w: cannot resolve symbolic links: %w", ErrInvalidPath, err)
		}
		// Path doesn't exist yet, validate its structure only
		resolvedPath = cleanPath
	}

	if strings.Contains(resolvedPath, "..") {
		return fmt.Errorf("%w: resolved path contains parent directory reference", ErrPathTraversal)
	}

	return nil
}

// ValidateEndpointName validates that an endpoint name is safe and well-formed.
// Endpoint names must:
// - Start with an alphanumeric character
// - Contain only alphanumeric characters, underscores, hyphens, or dots
// - Be at most 63 characters
func ValidateEndpointName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: endpoint name cannot be empty", ErrInvalidEndpointName)
	}

	if len(name) > 63 {
		return fmt.Errorf("%w: exceeds maximum length of 63 characters", ErrInvalidEndpointName)
	}

	if !endpointNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q must start with alphanumeric and contain only alphanumeric, underscore, hyphen, or dot", ErrInvalidEndpointName, name)
	}

	return nil
}

// IsContainerEnvironment detects if the code is running in a containerized environment.
// It checks for:
// - GitHub Codespaces (CODESPACES=true)
// - VS Code Dev Containers (REMOTE_CONTAINERS=true)
// - Docker containers (/.dockerenv file exists)
// - Kubernetes pods (KUBERNETES_SERVICE_HOST set)
func IsContainerEnvironment() bool {
	if os.Getenv("CODESPACES") == "true" {
		return true
	}

	if os.Getenv("REMOTE_CONTAINERS") == "true" {
		return true
	}

	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true
	}

	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}

	return false
}

// ValidateFilePermissions checks that a file is not group- or world-writable.
// On Windows, this check is skipped as Windows uses ACLs.
// Insecure files return ErrInsecureFilePermissions; callers decide whether
// that is fatal (container mounts are commonly 0666).
func ValidateFilePermissions(path string) error {
	if runtime.GOOS == "windows" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	if info.Mode().Perm()&0o022 != 0 {
		return ErrInsecureFilePermissions
	}

	return nil
}

// Package security provides validation for user-supplied file paths and
// identifiers read by the urlprefix CLI.
//
// # Key Features
//
//   - Path validation (prevents directory traversal, including through symlinks)
//   - Endpoint name validation (DNS-label-safe identifiers)
//   - File permission validation (detects group- and world-writable files)
//   - Container environment detection
//
// # Example Usage
//
//	if err := security.ValidatePath(configPath); err != nil {
//	    return fmt.Errorf("invalid config path: %w", err)
//	}
//
//	if err := security.ValidateFilePermissions(configPath); errors.Is(err, security.ErrInsecureFilePermissions) {
//	    log.Warn("config file is writable by other users", "path", configPath)
//	}
//
// All functions return sentinel errors wrapped with context, suitable for errors.Is.
package security

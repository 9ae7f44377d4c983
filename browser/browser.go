// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	pkgbrowser "github.com/pkg/browser"

	"github.com/jongio/urlprefix/logutil"
)

// Target represents the browser target for launching URLs.
type Target string

const (
	// TargetDefault uses the system default browser
	TargetDefault Target = "default"
	// TargetSystem uses the system default browser (alias for TargetDefault)
	TargetSystem Target = "system"
	// TargetNone disables browser launching
	TargetNone Target = "none"
)

var log = logutil.NewLogger("browser")

// ErrUnsupportedScheme indicates a URL that is not http:// or https://.
var ErrUnsupportedScheme = errors.New("unsupported URL scheme")

var (
	openerMu sync.RWMutex
	openURL  = pkgbrowser.OpenURL
)

// SetOpener replaces the function that hands URLs to the system browser and
// returns a function that restores the previous one. Tests use it to observe
// launches without starting a browser.
func SetOpener(fn func(url string) error) (restore func()) {
	openerMu.Lock()
	prev := openURL
	openURL = fn
	openerMu.Unlock()

	return func() {
		openerMu.Lock()
		openURL = prev
		openerMu.Unlock()
	}
}

func opener() func(string) error {
	openerMu.RLock()
	defer openerMu.RUnlock()
	return openURL
}

func init() {
	// pkg/browser copies the launcher's output to these writers by default.
	pkgbrowser.Stdout = io.Discard
	pkgbrowser.Stderr = io.Discard
}

// ValidTargets returns all valid browser target values.
func ValidTargets() []Target {
	return []Target{TargetDefault, TargetSystem, TargetNone}
}

// IsValid checks if a target string is valid.
func IsValid(target string) bool {
	t := Target(target)
	for _, valid := range ValidTargets() {
		if t == valid {
			return true
		}
	}
	return false
}

// ResolveTarget determines the actual browser target to use.
// Converts "default" to "system", and respects "none".
func ResolveTarget(target Target) Target {
	if target == TargetNone {
		return TargetNone
	}
	return TargetSystem
}

// LaunchOptions contains options for launching a browser.
type LaunchOptions struct {
	// URL to open
	URL string
	// Target browser to use
	Target Target
	// Timeout for the launch call (default 5 seconds)
	Timeout time.Duration
}

// Launch opens the specified URL in the browser determined by the target
// without waiting for the launcher. Only http:// and https:// URLs are
// accepted. A launcher failure is logged as a warning and not returned, so
// Launch suits long-running processes; a command that exits right after
// opening a URL should use LaunchSync.
func Launch(opts LaunchOptions) error {
	if err := checkURL(opts.URL); err != nil {
		return err
	}

	go func() {
		if err := LaunchSync(opts); err != nil {
			log.Warn("could not open browser automatically", "url", opts.URL, "error", err)
		}
	}()

	return nil
}

// LaunchSync opens the specified URL and waits until the launcher returns
// or opts.Timeout (default 5 seconds) elapses. TargetNone returns nil
// without launching.
func LaunchSync(opts LaunchOptions) error {
	if opts.Timeout == 0 {
		opts.Timeout = 5 * time.Second
	}

	if err := checkURL(opts.URL); err != nil {
		return err
	}

	if ResolveTarget(opts.Target) == TargetNone {
		log.Debug("browser launch disabled", "url", opts.URL)
		return nil
	}

	open := opener()
	done := make(chan error, 1)
	go func() {
		done <- open(opts.URL)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to open browser: %w", err)
		}
		log.Debug("opened browser", "url", opts.URL)
		return nil
	case <-time.After(opts.Timeout):
		return fmt.Errorf("browser launch timed out after %s", opts.Timeout)
	}
}

func checkURL(url string) error {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("%w: URL must start with http:// or https://", ErrUnsupportedScheme)
	}
	return nil
}

// GetTargetDisplayName returns a human-readable name for the browser target.
func GetTargetDisplayName(target Target) string {
	switch ResolveTarget(target) {
	case TargetSystem:
		return "default browser"
	default:
		return "none"
	}
}

// FormatValidTargets returns a comma-separated list of valid targets.
func FormatValidTargets() string {
	targets := ValidTargets()
	strs := make([]string, len(targets))
	for i, t := range targets {
		strs[i] = string(t)
	}
	return strings.Join(strs, ", ")
}

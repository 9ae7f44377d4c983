// Package browser opens built prefixes in the user's web browser.
//
// Launching is delegated to github.com/pkg/browser. This package adds URL
// scheme validation, target selection, and a non-blocking API.
//
// Only http:// and https:// URLs are accepted, so file://, ftp:// and
// javascript: URLs never reach the system launcher.
//
// # Browser Targets
//
//   - TargetDefault: Uses the system default browser (alias for TargetSystem)
//   - TargetSystem: Uses the system default browser
//   - TargetNone: Disables browser launching
//
// # Example Usage
//
//	err := browser.Launch(browser.LaunchOptions{
//	    URL:    prefix.Build(prefix.HTTPS, "magiclen.org", prefix.NoPort, "url-prefix"),
//	    Target: browser.TargetDefault,
//	})
//	if err != nil {
//	    return err
//	}
//
// Validate a browser target from user input:
//
//	if !browser.IsValid(userInput) {
//	    return fmt.Errorf("invalid browser target (valid: %s)", browser.FormatValidTargets())
//	}
//
// # Error Handling
//
// Launch returns immediately. An error is returned only for an invalid URL
// scheme; failures of the launcher itself are logged through logutil.
package browser

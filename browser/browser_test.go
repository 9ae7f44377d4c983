// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// stubOpenURL replaces openURL for the duration of the test and reports each
// URL it receives on the returned channel.
func stubOpenURL(t *testing.T, err error) <-chan string {
	t.Helper()
	calls := make(chan string, 4)
	t.Cleanup(SetOpener(func(url string) error {
		calls <- url
		return err
	}))
	return calls
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   bool
	}{
		{"default is valid", "default", true},
		{"system is valid", "system", true},
		{"none is valid", "none", true},
		{"invalid target", "invalid", false},
		{"empty string", "", false},
		{"chrome not valid", "chrome", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.target); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		want   Target
	}{
		{"none always returns none", TargetNone, TargetNone},
		{"default converts to system", TargetDefault, TargetSystem},
		{"system stays system", TargetSystem, TargetSystem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveTarget(tt.target); got != tt.want {
				t.Errorf("ResolveTarget(%q) = %q, want %q", tt.target, got, tt.want)
			}
		})
	}
}

func TestGetTargetDisplayName(t *testing.T) {
	tests := []struct {
		target Target
		want   string
	}{
		{TargetSystem, "default browser"},
		{TargetDefault, "default browser"},
		{TargetNone, "none"},
	}

	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			if got := GetTargetDisplayName(tt.target); got != tt.want {
				t.Errorf("GetTargetDisplayName(%q) = %q, want %q", tt.target, got, tt.want)
			}
		})
	}
}

func TestLaunch(t *testing.T) {
	tests := []struct {
		name     string
		opts     LaunchOptions
		wantErr  bool
		wantOpen bool
	}{
		{
			name:     "none target does not launch",
			opts:     LaunchOptions{URL: "http://localhost:4280", Target: TargetNone},
			wantOpen: false,
		},
		{
			name:     "http URL with system target",
			opts:     LaunchOptions{URL: "http://localhost:4280", Target: TargetSystem},
			wantOpen: true,
		},
		{
			name:     "https URL with default target",
			opts:     LaunchOptions{URL: "https://magiclen.org/url-prefix", Target: TargetDefault},
			wantOpen: true,
		},
		{
			name:    "file URL scheme returns error",
			opts:    LaunchOptions{URL: "file:///etc/passwd", Target: TargetSystem},
			wantErr: true,
		},
		{
			name:    "ftp URL scheme returns error",
			opts:    LaunchOptions{URL: "ftp://magiclen.org", Target: TargetSystem},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := stubOpenURL(t, nil)

			err := Launch(tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Launch() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantOpen {
				select {
				case got := <-calls:
					if got != tt.opts.URL {
						t.Errorf("opened %q, want %q", got, tt.opts.URL)
					}
				case <-time.After(2 * time.Second):
					t.Fatal("expected browser to be opened")
				}
				return
			}

			select {
			case got := <-calls:
				t.Errorf("expected no launch, got %q", got)
			case <-time.After(50 * time.Millisecond):
			}
		})
	}
}

func TestLaunchSync(t *testing.T) {
	t.Run("opens before returning", func(t *testing.T) {
		calls := stubOpenURL(t, nil)

		if err := LaunchSync(LaunchOptions{URL: "https://magiclen.org", Target: TargetSystem}); err != nil {
			t.Fatalf("LaunchSync() error = %v", err)
		}

		select {
		case got := <-calls:
			if got != "https://magiclen.org" {
				t.Errorf("opened %q", got)
			}
		default:
			t.Fatal("LaunchSync returned before the browser was opened")
		}
	})

	t.Run("none target does not launch", func(t *testing.T) {
		calls := stubOpenURL(t, nil)

		if err := LaunchSync(LaunchOptions{URL: "https://magiclen.org", Target: TargetNone}); err != nil {
			t.Fatalf("LaunchSync() error = %v", err)
		}
		if len(calls) != 0 {
			t.Errorf("expected no launch, got %q", <-calls)
		}
	})

	t.Run("returns launcher error", func(t *testing.T) {
		launchErr := errors.New("no browser")
		stubOpenURL(t, launchErr)

		err := LaunchSync(LaunchOptions{URL: "https://magiclen.org", Target: TargetSystem})
		if !errors.Is(err, launchErr) {
			t.Errorf("LaunchSync() error = %v, want %v", err, launchErr)
		}
	})

	t.Run("rejects unsupported scheme", func(t *testing.T) {
		calls := stubOpenURL(t, nil)

		err := LaunchSync(LaunchOptions{URL: "ftp://magiclen.org", Target: TargetSystem})
		if !errors.Is(err, ErrUnsupportedScheme) {
			t.Errorf("LaunchSync() error = %v, want %v", err, ErrUnsupportedScheme)
		}
		if len(calls) != 0 {
			t.Errorf("expected no launch, got %q", <-calls)
		}
	})

	t.Run("times out", func(t *testing.T) {
		block := make(chan struct{})
		restore := SetOpener(func(string) error {
			<-block
			return nil
		})
		t.Cleanup(func() {
			close(block)
			restore()
		})

		err := LaunchSync(LaunchOptions{URL: "https://magiclen.org", Target: TargetSystem, Timeout: 10 * time.Millisecond})
		if err == nil || !strings.Contains(err.Error(), "timed out") {
			t.Errorf("expected timeout error, got %v", err)
		}
	})
}

func TestSetOpenerRestore(t *testing.T) {
	first := func(string) error { return errors.New("first") }
	restoreFirst := SetOpener(first)
	defer restoreFirst()

	restoreSecond := SetOpener(func(string) error { return nil })
	if err := opener()("https://magiclen.org"); err != nil {
		t.Fatalf("expected replacement opener, got %v", err)
	}

	restoreSecond()
	if err := opener()("https://magiclen.org"); err == nil || err.Error() != "first" {
		t.Errorf("restore did not reinstate previous opener, got %v", err)
	}
}

func TestFormatValidTargets(t *testing.T) {
	if got := FormatValidTargets(); got != "default, system, none" {
		t.Errorf("FormatValidTargets() = %q", got)
	}
}

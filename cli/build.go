package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jongio/urlprefix/browser"
	"github.com/jongio/urlprefix/cliout"
	"github.com/jongio/urlprefix/hostcheck"
	"github.com/jongio/urlprefix/logutil"
	"github.com/jongio/urlprefix/prefix"
)

type buildOptions struct {
	protocol   prefix.Protocol
	host       string
	port       uint16
	path       string
	validation prefix.Validation
	allowLocal bool
	open       bool
	browser    string
}

type buildOutput struct {
	Prefix   string  `json:"prefix"`
	Protocol string  `json:"protocol"`
	Host     string  `json:"host"`
	Port     *uint16 `json:"port,omitempty"`
	Path     string  `json:"path,omitempty"`
}

func newBuildCommand() *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a URL prefix",
		Example: `  urlprefix build --host magiclen.org --port 8100 --path url-prefix
  urlprefix build --protocol http --host 127.0.0.1:8080 --validate ipv4 --allow-local`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.Var(newProtocolValue(prefix.HTTPS, &opts.protocol), "protocol", "Protocol ("+prefix.ProtocolNames()+")")
	flags.StringVar(&opts.host, "host", "", "Host name or IP address, optionally with :port")
	flags.Uint16Var(&opts.port, "port", 0, "Port; omitted from the prefix when it is the protocol's default")
	flags.StringVar(&opts.path, "path", "", "Path appended after the host")
	flags.Var(newValidationValue(prefix.ValidateNone, &opts.validation), "validate", "Host validation ("+prefix.ValidationNames()+")")
	flags.BoolVar(&opts.allowLocal, "allow-local", false, "Accept localhost and loopback or private addresses")
	flags.BoolVar(&opts.open, "open", false, "Open the prefix in a browser")
	flags.StringVar(&opts.browser, "browser", string(browser.TargetDefault), "Browser target ("+browser.FormatValidTargets()+")")
	_ = cmd.MarkFlagRequired("host")

	return cmd
}

func runBuild(cmd *cobra.Command, opts *buildOptions) error {
	log := logutil.NewLogger("cli").WithOperation("build")

	if opts.open && !browser.IsValid(opts.browser) {
		return fmt.Errorf("invalid browser target %q (valid options: %s)", opts.browser, browser.FormatValidTargets())
	}

	port := prefix.NoPort
	if cmd.Flags().Changed("port") {
		if opts.port == 0 {
			return fmt.Errorf("%w: --port must be between 1 and 65535", hostcheck.ErrInvalidPort)
		}
		port = prefix.PortOf(opts.port)
	}

	result, err := prefix.BuildChecked(opts.protocol, opts.host, port, opts.path, opts.validation, opts.allowLocal)
	if err != nil {
		return err
	}
	log.Debug("built prefix", "prefix", result, "validation", opts.validation.String())

	out := buildOutput{
		Prefix:   result,
		Protocol: opts.protocol.Name(),
		Host:     opts.host,
		Path:     opts.path,
	}
	if n, ok := port.Get(); ok {
		out.Port = &n
	}

	if err := cliout.Print(out, func() {
		cliout.Plain("%s", result)
	}); err != nil {
		return err
	}

	if !opts.open {
		return nil
	}

	target := browser.Target(opts.browser)
	if browser.ResolveTarget(target) == browser.TargetNone {
		return nil
	}

	// The process exits as soon as RunE returns, so the launch must finish here.
	err = browser.LaunchSync(browser.LaunchOptions{URL: result, Target: target})
	if errors.Is(err, browser.ErrUnsupportedScheme) {
		return err
	}
	if err != nil {
		log.Warn("browser launch failed", "url", result, "error", err)
		if !cliout.IsJSON() {
			cliout.Warning("Could not open %s: %v", cliout.URL(result), err)
		}
		return nil
	}

	if !cliout.IsJSON() {
		cliout.Success("Opened %s in %s", cliout.URL(result), browser.GetTargetDisplayName(target))
	}
	return nil
}

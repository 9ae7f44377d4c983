package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jongio/urlprefix/cliout"
	"github.com/jongio/urlprefix/hostcheck"
	"github.com/jongio/urlprefix/prefix"
)

type parseOutput struct {
	Prefix string  `json:"prefix"`
	Scheme string  `json:"scheme"`
	Host   string  `json:"host"`
	Port   *uint16 `json:"port,omitempty"`
	Path   string  `json:"path,omitempty"`
}

func newParseCommand() *cobra.Command {
	var allowFTP, allowLocal, details bool

	cmd := &cobra.Command{
		Use:   "parse <url>",
		Short: "Validate a URL and print its prefix",
		Long: `Validate an absolute http:// or https:// URL and print it as a prefix,
dropping a port that equals the scheme's default. Query strings, fragments,
and user info are rejected.`,
		Example: "  urlprefix parse https://magiclen.org:443/url-prefix",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parse := hostcheck.ParseHTTPURL
			if allowFTP {
				parse = hostcheck.ParseHTTPFTPURL
			}

			u, err := parse(args[0], hostcheck.Options{AllowLocal: allowLocal})
			if err != nil {
				return err
			}

			out := parseOutput{
				Prefix: prefix.BuildWithValidatedURL(u),
				Scheme: u.Scheme(),
				Host:   u.Host(),
				Path:   u.Path(),
			}
			if n, ok := u.Port(); ok {
				out.Port = &n
			}

			return cliout.Print(out, func() {
				if !details {
					cliout.Plain("%s", out.Prefix)
					return
				}
				cliout.Header("Prefix")
				cliout.Label("Prefix", out.Prefix)
				cliout.Label("Scheme", out.Scheme)
				cliout.Label("Host", out.Host)
				if out.Port != nil {
					cliout.Label("Port", strconv.FormatUint(uint64(*out.Port), 10))
				}
				if out.Path != "" {
					cliout.Label("Path", out.Path)
				}
			})
		},
	}

	cmd.Flags().BoolVar(&allowFTP, "allow-ftp", false, "Also accept ftp:// URLs")
	cmd.Flags().BoolVar(&allowLocal, "allow-local", false, "Accept localhost and loopback or private addresses")
	cmd.Flags().BoolVar(&details, "details", false, "Print each component of the parsed URL")

	return cmd
}

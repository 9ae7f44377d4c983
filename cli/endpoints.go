package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jongio/urlprefix/cliout"
	"github.com/jongio/urlprefix/config"
)

type endpointOutput struct {
	Name   string `json:"name"`
	Prefix string `json:"prefix"`
}

func newEndpointsCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "endpoints [name]",
		Short: "Print the prefixes of endpoints defined in a config file",
		Long: `Load named endpoints from a YAML file and print their prefixes.

The file is read from --config, or $` + config.EnvConfig + `, or ` + config.DefaultFileName + `.
With a name argument only that endpoint's prefix is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = config.DefaultPath()
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				e, ok := cfg.Lookup(args[0])
				if !ok {
					return fmt.Errorf("endpoint %q not found (available: %s)", args[0], strings.Join(cfg.Names(), ", "))
				}
				out := endpointOutput{Name: e.Name, Prefix: e.Prefix()}
				return cliout.Print(out, func() {
					cliout.Plain("%s", out.Prefix)
				})
			}

			outputs := make([]endpointOutput, len(cfg.Endpoints))
			rows := make([]cliout.TableRow, len(cfg.Endpoints))
			for i, e := range cfg.Endpoints {
				outputs[i] = endpointOutput{Name: e.Name, Prefix: e.Prefix()}
				rows[i] = cliout.TableRow{"NAME": e.Name, "PREFIX": outputs[i].Prefix}
			}

			return cliout.Print(outputs, func() {
				if len(rows) == 0 {
					cliout.Info("No endpoints defined in %s", configPath)
					return
				}
				cliout.Table([]string{"NAME", "PREFIX"}, rows)
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the endpoints file")

	return cmd
}

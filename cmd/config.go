package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/wrk/pkg/service"
)

func NewConfigCmd() *cobra.Command {
	var (
		getKey  string
		setPair string
		edit    bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read, change, or edit the configuration",
		Long: `Read or change configuration values, or open the config file in the
editor. When several sub-flags are given, --get wins over --set wins
over --edit.

Examples:
  wrk config --get workspace
  wrk config --set ide=code
  wrk config --set workspace=~/code
  wrk config --edit
  wrk config                # same as --edit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			defer svc.Close()
			out := cmd.OutOrStdout()

			switch {
			case getKey != "":
				value, err := service.ConfigGet(svc.Config, getKey)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, value)
				return nil

			case setPair != "":
				key, err := service.ConfigSet(svc.Config, setPair)
				if err != nil {
					return err
				}
				if err := svc.Config.Save(svc.ConfigPath); err != nil {
					return err
				}
				value, _ := service.ConfigGet(svc.Config, key)
				fmt.Fprintf(out, "Set %s = %s\n", key, value)
				return nil

			default:
				// --edit and bare `wrk config` behave the same.
				return svc.EditConfig(service.OpenOptions{})
			}
		},
	}

	cmd.Flags().StringVar(&getKey, "get", "", "Print the value of a config key")
	cmd.Flags().StringVar(&setPair, "set", "", "Set a config value as key=value")
	cmd.Flags().BoolVar(&edit, "edit", false, "Open the config file in the editor")

	return cmd
}

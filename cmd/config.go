package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"
)

// applyConfigFile reads a YAML map of flag names to values, such as
//
//	mode: infinite
//	probability: 0.15
//	records: /home/me/.sweep.yaml
//
// and applies each value to its flag, unless the flag was set on the command
// line.
func applyConfigFile(cmd *cobra.Command, path string) error {
	in, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading config")
	}

	values := make(map[string]interface{})
	if err := yaml.Unmarshal(in, &values); err != nil {
		return errors.Wrapf(err, "parsing config %s", path)
	}

	for name, value := range values {
		flag := lookupFlag(cmd, name)
		if flag == nil {
			return errors.Errorf("unknown option %q in %s", name, path)
		}
		if flag.Changed {
			continue
		}
		if err := flag.Value.Set(fmt.Sprint(value)); err != nil {
			return errors.Wrapf(err, "invalid value for %q in %s", name, path)
		}
	}
	return nil
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag
	}
	return cmd.PersistentFlags().Lookup(name)
}

// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/bookmycook/bookmycook/internal/i18n"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

// newDebugCmd prints where the configuration came from and what it resolved
// to, for support requests.
func newDebugCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "debug",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			used := opts.configUsed
			if used == "" {
				used = "(none, running on defaults)"
			}
			fmt.Fprintf(out, "config file: %s\n", used)
			fmt.Fprintf(out, "version: %s\n", compositeVersion())
			fmt.Fprintf(out, "locales: %s\n\n", strings.Join(i18n.Locales(), ", "))

			data, err := yaml.Marshal(opts.cfg)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
}

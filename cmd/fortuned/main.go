// fortuned serves the Digital Fortune Cookie page and its Gemini-backed API.
//
// Usage:
//
//	fortuned serve
//	fortuned serve --env-file ./prod.env --port 9090 --host 0.0.0.0
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var opts serveOptions

	root := &cobra.Command{
		Use:           "fortuned",
		Short:         "Digital Fortune Cookie server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), cmd.Flags(), opts)
		},
	}

	f := serve.Flags()
	f.StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading the environment (missing file is ignored)")
	f.StringVar(&opts.host, "host", "", "bind address (overrides HOST)")
	f.IntVarP(&opts.port, "port", "p", 0, "HTTP port (overrides PORT)")
	f.StringVar(&opts.basePath, "base-path", "", "URL prefix for the page and API (overrides BASE_PATH)")

	root.AddCommand(serve)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

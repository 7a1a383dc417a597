// Command reqres runs a local clone of the reqres.in test API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "reqres",
		Short: "reqres is a local mock of the reqres.in user API",
		Long: `reqres serves a fake user API: paginated listing, CRUD on users,
a login/register stub and a status endpoint.

Configuration is read from the environment (and a .env file outside production).
Flags override the environment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	serve := newServeCmd()
	root.AddCommand(serve, newResetCmd(), newVersionCmd())

	// Running the bare binary starts the server.
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

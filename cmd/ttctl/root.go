package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/timetrack-backend/pkg/ttclient"
)

const defaultServer = "http://localhost:8080"

type globalFlags struct {
	server string
	token  string
}

func (g *globalFlags) client() (*ttclient.Client, error) {
	if g.token == "" {
		return nil, errors.New("no token: pass --token or set TTCTL_TOKEN (see 'ttctl token')")
	}
	return ttclient.New(g.server, g.token), nil
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "ttctl",
		Short:         "ttctl is the command line client for the time tracking API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	server := os.Getenv("TTCTL_SERVER")
	if server == "" {
		server = defaultServer
	}
	root.PersistentFlags().StringVar(&g.server, "server", server, "API base URL (env TTCTL_SERVER)")
	root.PersistentFlags().StringVar(&g.token, "token", os.Getenv("TTCTL_TOKEN"), "bearer token (env TTCTL_TOKEN)")

	root.AddCommand(
		newTokenCmd(),
		newStatusCmd(g),
		newStartCmd(g),
		newStopCmd(g),
		newCancelCmd(g),
		newWatchCmd(g),
		newReportCmd(g),
	)
	return root
}

// Package serve starts the dashboard HTTP server
package serve

import (
	"net/http"

	"gmartin/finboard/cmd/root"
	"gmartin/finboard/internal/api"

	"github.com/spf13/cobra"
)

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard HTTP server",
	Long: `Start the HTTP server exposing the dashboard API: CSV upload,
transaction listing and editing, categories, summaries, trends,
projections, budgets and rendered charts.`,
	RunE: serveFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Addr, "addr", "a", "", "Listen address (overrides configuration)")
}

func serveFunc(cmd *cobra.Command, args []string) error {
	sess, err := root.OpenSession()
	if err != nil {
		return err
	}

	addr := root.Cfg.Server.Addr
	if root.Addr != "" {
		addr = root.Addr
	}

	server := api.NewServer(sess, root.Log)
	root.Log.WithField("addr", addr).Info("Dashboard listening")
	return http.ListenAndServe(addr, server.Handler())
}

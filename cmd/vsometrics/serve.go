package main

import (
	"github.com/m-zajac/vsometrics/internal/api/http"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves reports over http, every request runs a fresh report",
	RunE: func(cmd *cobra.Command, args []string) error {
		l := newLogger(cmd)

		d, err := setup(cmd, l)
		if err != nil {
			l.Error(err)
			return err
		}
		defer d.close()

		mux := http.NewMux(
			d.service,
			d.conf.HTTPHandlerTimeout,
			d.collector.Registry(),
			l.WithField("component", "mux"),
		)
		server := http.NewServer(
			d.conf.HTTPServerAddress,
			d.conf.HTTPProfileServerAddress,
			mux,
			l.WithField("component", "httpServer"),
		)
		server.Run()

		return nil
	},
}

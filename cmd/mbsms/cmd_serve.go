package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
	"github.com/supernova0730/mbsms/adapters/server/https"
	"github.com/supernova0730/mbsms/api/rest"
	"github.com/supernova0730/mbsms/mbTools"
)

const shutdownTimeout = 20 * time.Second

var errServerStopped = errors.New("http server stopped with error")

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the send form and json api over http",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.lg.Sync()

			srv := https.Start(
				app.conf.HttpListen,
				rest.GetHandler(app.lg, app.client, app.conf.HttpCors),
				app.lg,
			)

			var exitCode int

			select {
			case <-mbTools.StopSignal():
			case <-srv.Wait():
				exitCode = 1
			}

			app.lg.Infow("Shutting down...")

			if !srv.Shutdown(shutdownTimeout) {
				exitCode = 1
			}

			app.lg.Infow("Exit")

			if exitCode != 0 {
				return errServerStopped
			}

			return nil
		},
	}
}

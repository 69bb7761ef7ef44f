package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/supernova0730/mbsms/adapters/client/httpc"
	"github.com/supernova0730/mbsms/adapters/client/httpc/httpclient"
	"github.com/supernova0730/mbsms/adapters/logger/zap"
	"github.com/supernova0730/mbsms/adapters/sms/messagebird"
)

var (
	confFile string

	rootCmd = &cobra.Command{
		Use:           "mbsms",
		Short:         "MessageBird SMS command-line client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

type appSt struct {
	conf   *ConfSt
	lg     *zap.St
	client *messagebird.St
}

func Execute() {
	rootCmd.PersistentFlags().StringVar(&confFile, "config", "", "config file (yaml, json, toml or env)")

	rootCmd.AddCommand(sendCmd())
	rootCmd.AddCommand(balanceCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed executing CLI command: %s, exiting...\n", err)
		os.Exit(1)
	}
}

func newApp() (*appSt, error) {
	conf, err := loadConf(confFile)
	if err != nil {
		return nil, err
	}

	if err = conf.requireCredentials(); err != nil {
		return nil, err
	}

	lg := zap.New(conf.LogLevel, conf.Debug)

	opts := messagebird.HttpcOptions(conf.ApiUrl, conf.Timeout)
	if conf.Debug {
		opts.LogFlags = httpc.LogRequest | httpc.LogResponse
	}

	return &appSt{
		conf:   conf,
		lg:     lg,
		client: messagebird.New(lg, httpclient.New(lg, opts), conf.Username, conf.Password),
	}, nil
}

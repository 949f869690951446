package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "FreelanceDAO"
	app.Usage = ""
	app.Commands = []*cli.Command{
		{
			Action:      server.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Flags:       []cli.Flag{},
			Category:    "Api",
			Description: `Serves chain state reads and action submission over HTTP.`,
		},
		{
			Action:      server.startTracker,
			Name:        "tracker",
			Usage:       "Start the pending action tracker",
			Flags:       []cli.Flag{},
			Category:    "Worker",
			Description: `Reconciles actions whose confirmation was not observed, after a timeout or restart.`,
		},
	}

	s.app = app
}

package main

import (
	"github.com/urfave/cli/v2"
)

func (s *srv) startTracker(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.ctx = s.newContext()
	s.migrateDB()
	s.loadRepos()
	s.loadCache()
	s.loadChainLayer()

	s.logger.Infof("Starting pending action tracker")
	s.tracker.Run(s.ctx)
	return nil
}

package main

import (
	"fmt"
	"net/http"

	"github.com/freelancedao/backend/pkg/router"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.ctx = s.newContext()
	s.migrateDB()
	s.loadRepos()
	s.loadCache()
	s.loadChainLayer()
	s.loadDomains()
	s.loadRouter()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.configs.ApiServer.Port),
		Handler: s.router.Handler(),
	}

	s.logger.Infof("Starting server on port %s", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.Use(router.Logger(s.ctx))

	// Chain resource API
	router.GET(s.router, "/resolveAddresses", s.projectDomain.ResolveAddresses)
	router.GET(s.router, "/getProject", s.projectDomain.Get)
	router.GET(s.router, "/getProjectBoard", s.projectDomain.GetBoard)
	router.GET(s.router, "/getAvailableProjects", s.projectDomain.GetAvailable)
	router.GET(s.router, "/getClientProjects", s.projectDomain.GetByClient)
	router.GET(s.router, "/getFreelancerProjects", s.projectDomain.GetByFreelancer)
	router.GET(s.router, "/getMilestones", s.projectDomain.GetMilestones)
	router.GET(s.router, "/getApplications", s.projectDomain.GetApplications)

	// User API
	router.GET(s.router, "/getUser", s.userDomain.Get)
	router.GET(s.router, "/getUserRatings", s.userDomain.GetRatings)

	// Action API
	router.GET(s.router, "/getAction", s.actionDomain.Get)
	router.GET(s.router, "/getPendingActions", s.actionDomain.GetPending)
	router.GET(s.router, "/getActionsByActor", s.actionDomain.GetByActor)

	// Submission API
	router.POST(s.router, "/registerUser", s.userDomain.Register)
	router.POST(s.router, "/rateUser", s.userDomain.Rate)
	router.POST(s.router, "/createProject", s.projectDomain.Create)
	router.POST(s.router, "/applyToProject", s.projectDomain.Apply)
	router.POST(s.router, "/assignFreelancer", s.projectDomain.Assign)
	router.POST(s.router, "/submitMilestone", s.projectDomain.SubmitMilestone)
	router.POST(s.router, "/approveMilestone", s.projectDomain.ApproveMilestone)
}

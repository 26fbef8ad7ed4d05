package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/fincommittee/platform/internal/config"
	"github.com/fincommittee/platform/internal/database"
	"github.com/fincommittee/platform/internal/handler"
	"github.com/fincommittee/platform/internal/queue"
	"github.com/fincommittee/platform/internal/report"
	"github.com/fincommittee/platform/internal/repository"
	"github.com/fincommittee/platform/internal/router"
	"github.com/fincommittee/platform/internal/settings"
)

func main() {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()
	reportingCfg := config.LoadReportingConfig()
	cacheCfg := config.LoadCacheConfig()
	rlCfg := config.LoadRateLimitConfig()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, response cache and rate limiting disabled")
	}

	members := repository.NewMemberRepo(db)
	tokens := repository.NewTokenRepo(db)
	sponsors := repository.NewSponsorRepo(db)
	events := repository.NewEventRepo(db)
	sponsorships := repository.NewSponsorshipRepo(db)
	analytics := repository.NewAnalyticsRepo(db)

	store := settings.NewStore()
	assembler := report.NewAssembler(sponsors, events, sponsorships, reportingCfg)

	h := router.Handlers{
		Auth:         handler.NewAuthHandler(cfg, members, tokens, store),
		Members:      handler.NewMemberHandler(members, tokens),
		Sponsors:     handler.NewSponsorHandler(sponsors),
		Events:       handler.NewEventHandler(events),
		Sponsorships: handler.NewSponsorshipHandler(sponsorships, sponsors, events, analytics),
		Analytics:    handler.NewAnalyticsHandler(members, sponsors, events, sponsorships, analytics, reportingCfg),
		Reports:      handler.NewReportHandler(assembler),
		Settings:     handler.NewSettingsHandler(store, cfg, members, sponsors, events, sponsorships),
	}

	go queue.StartPaidConsumer()

	e := echo.New()
	router.Register(e, h, cfg, rdb, cacheCfg, rlCfg)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

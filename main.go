package main

import (
	"context"
	"os/signal"
	"syscall"

	curatorx "github.com/paxbot/curator-agent/agent/curator"
	orchestratorx "github.com/paxbot/curator-agent/agent/orchestrator"
	placesx "github.com/paxbot/curator-agent/agent/places"
	statex "github.com/paxbot/curator-agent/agent/state"
	turnlogx "github.com/paxbot/curator-agent/agent/turnlog"
	configx "github.com/paxbot/curator-agent/pkg/config"
	_ "github.com/paxbot/curator-agent/pkg/logger/autoload"
	openrouterx "github.com/paxbot/curator-agent/pkg/openrouter"
	serverx "github.com/paxbot/curator-agent/server"
	"github.com/rs/zerolog/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	placesCfg := configx.MustNew[placesx.Config]("PLACES")
	placesClient, err := placesx.NewClient(*placesCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("places client init failed")
	}
	gateway := placesx.NewGateway(placesClient)

	openRouterCfg := configx.MustNew[openrouterx.Config]("OPENROUTER")
	chatModel, err := openRouterCfg.New(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("chat model init failed")
	}

	curator, err := curatorx.New(ctx, chatModel, gateway)
	if err != nil {
		log.Fatal().Err(err).Msg("curator init failed")
	}

	redisCfg := configx.MustNew[statex.RedisConfig]("SESSION_REDIS")
	var store statex.Store
	strictSessions := false
	if redisCfg.Configured() {
		redisStore, err := statex.NewRedisStore(*redisCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("session store init failed")
		}
		store = redisStore
		strictSessions = true
		log.Info().Msg("using durable session store")
	} else {
		store = statex.NewMemoryStore()
		log.Info().Msg("using in-memory session store")
	}

	turnlogCfg := configx.MustNew[turnlogx.Config]("TURNLOG")
	var recorder orchestratorx.TurnRecorder
	if turnlogCfg.Configured() {
		turnRecorder, err := turnlogx.New(ctx, *turnlogCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("turn log init failed")
		}
		defer turnRecorder.Close()
		recorder = turnRecorder
		log.Info().Msg("turn audit log enabled")
	}

	orch, err := orchestratorx.New(store, curator, recorder, orchestratorx.Config{
		StrictSessions: strictSessions,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("orchestrator init failed")
	}

	serverCfg := configx.MustNew[serverx.Config]("SERVER")
	srv, err := serverx.New(orch, *serverCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("server init failed")
	}

	if err := srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server terminated")
	}
}

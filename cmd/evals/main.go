// Command evals runs the scripted scenario suite against the live curator
// and prints per-case rule and judge outcomes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	curatorx "github.com/paxbot/curator-agent/agent/curator"
	evalsx "github.com/paxbot/curator-agent/agent/evals"
	placesx "github.com/paxbot/curator-agent/agent/places"
	configx "github.com/paxbot/curator-agent/pkg/config"
	_ "github.com/paxbot/curator-agent/pkg/logger/autoload"
	openrouterx "github.com/paxbot/curator-agent/pkg/openrouter"
	"github.com/rs/zerolog/log"
)

func main() {
	var (
		model   = flag.String("model", "", "override the model under evaluation")
		verbose = flag.Bool("v", false, "print per-rule outcomes for every case")
	)
	flag.Parse()

	ctx := context.Background()

	placesCfg := configx.MustNew[placesx.Config]("PLACES")
	placesClient, err := placesx.NewClient(*placesCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("places client init failed")
	}
	gateway := placesx.NewGateway(placesClient)

	openRouterCfg := configx.MustNew[openrouterx.Config]("OPENROUTER")
	if *model != "" {
		openRouterCfg.Model = *model
	}

	chatModel, err := openRouterCfg.New(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("chat model init failed")
	}
	curator, err := curatorx.New(ctx, chatModel, gateway)
	if err != nil {
		log.Fatal().Err(err).Msg("curator init failed")
	}

	judgeClient := openrouterx.NewClient(*openRouterCfg)
	if judgeClient == nil {
		log.Fatal().Msg("judge client init failed")
	}
	judge, err := evalsx.NewJudge(judgeClient, openRouterCfg.Model)
	if err != nil {
		log.Fatal().Err(err).Msg("judge init failed")
	}

	runner, err := evalsx.NewRunner(curator, judge)
	if err != nil {
		log.Fatal().Err(err).Msg("runner init failed")
	}

	rule := strings.Repeat("=", 60)
	fmt.Printf("\n%s\nModel: %s\n%s\n\n", rule, openRouterCfg.Model, rule)

	results, err := runner.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("eval run failed")
	}

	for _, r := range results {
		fmt.Printf("[ %s ]\n  Status: %s\n", r.Case, r.Status)
		if *verbose || r.Status == "FAIL" {
			for check, ok := range r.Rules {
				if !ok {
					fmt.Printf("    FAIL rule  -> %s\n", check)
				}
			}
			if !r.Judge.Passed && r.Judge.Reason != "" {
				fmt.Printf("    FAIL judge -> %s\n", r.Judge.Reason)
			}
		}
		fmt.Println()
	}

	passed := evalsx.Passed(results)
	fmt.Printf("%s\nResults: %d/%d passed  |  model: %s\n%s\n", rule, passed, len(results), openRouterCfg.Model, rule)

	if passed != len(results) {
		os.Exit(1)
	}
}

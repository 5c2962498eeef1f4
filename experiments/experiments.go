package experiments

import (
	"context"
	"fmt"

	"riskbattle/engine"
	"riskbattle/experiments/metrics"
	"riskbattle/game"

	"github.com/rs/zerolog/log"
)

type OddsConfig struct {
	Attacking int
	Defending int
	Battles   int
	// Attack is the fixed attack size; 0 attacks with as many units as allowed.
	Attack int
}

// RunOdds plays Battles automated battles one after another and summarises how
// often the attacker conquers the territory.
func RunOdds(ctx context.Context, cfg OddsConfig, resolver *game.Resolver) (metrics.OddsMetric, error) {
	if cfg.Battles <= 0 {
		return metrics.OddsMetric{}, fmt.Errorf("battles must be positive, got %d", cfg.Battles)
	}
	if cfg.Attacking < 0 || cfg.Defending < 0 {
		return metrics.OddsMetric{}, fmt.Errorf("troop counts must be non-negative, got %d and %d", cfg.Attacking, cfg.Defending)
	}

	var attacker engine.Attacker = engine.MaxAttacker{Rules: resolver.Rules}
	if cfg.Attack > 0 {
		attacker = engine.FixedAttacker{Rules: resolver.Rules, Units: cfg.Attack}
	}

	log.Info().Msgf("simulating %d battles of %d attackers against %d defenders", cfg.Battles, cfg.Attacking, cfg.Defending)

	collector := metrics.NewCollector()
	collector.Start(cfg.Attacking, cfg.Defending)
	for i := 0; i < cfg.Battles; i++ {
		e := engine.LocalEngine(cfg.Attacking, cfg.Defending, resolver, attacker)
		outcome, err := e.Run(ctx)
		if err != nil {
			return collector.Complete(), fmt.Errorf("battle %d: %w", i+1, err)
		}
		collector.AddBattle(metrics.BattleMetric{
			Rounds:        outcome.Rounds,
			Conquered:     outcome.Conquered,
			AttackersLeft: outcome.Final.Attacking,
			DefendersLeft: outcome.Final.Defending,
		})
	}

	result := collector.Complete()
	log.Info().Msgf("attacker won %d of %d battles in %s", result.Wins, result.Battles, result.Duration)
	return result, nil
}

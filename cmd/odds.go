package cmd

import (
	"fmt"

	"riskbattle/experiments"
	"riskbattle/game"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var oddsCmd = &cobra.Command{
	Use:   "odds <attacking> <defending>",
	Short: "Estimate the attacker's chance of conquering a territory",
	Long: `Simulate many battles between the given forces without asking for input.

The attacker commits the largest allowed number of troops every round unless
--attack fixes the attack size.`,
	Args: cobra.ExactArgs(2),
	RunE: runOdds,
}

func init() {
	oddsCmd.Flags().Int("battles", 0, "number of battles to simulate")
	oddsCmd.Flags().Int("attack", 0, "fixed attack size (0 attacks with the maximum)")
	_ = viper.BindPFlag("odds.battles", oddsCmd.Flags().Lookup("battles"))
	_ = viper.BindPFlag("odds.attack", oddsCmd.Flags().Lookup("attack"))
	rootCmd.AddCommand(oddsCmd)
}

func runOdds(cmd *cobra.Command, args []string) error {
	attacking, defending, err := parseTroops(args)
	if err != nil {
		return err
	}
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	resolver := game.NewResolver(game.NewStandardRules(), game.NewRoller(cfg.Seed))
	result, err := experiments.RunOdds(cmd.Context(), experiments.OddsConfig{
		Attacking: attacking,
		Defending: defending,
		Battles:   cfg.Odds.Battles,
		Attack:    cfg.Odds.Attack,
	}, resolver)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "A: %d, D: %d over %d battles\n", result.Attacking, result.Defending, result.Battles)
	fmt.Fprintf(out, "Attacker wins:       %.1f%%\n", result.WinRate*100)
	fmt.Fprintf(out, "Mean rounds:         %.2f\n", result.MeanRounds)
	fmt.Fprintf(out, "Mean attackers left: %.2f\n", result.MeanAttackersLeft)
	fmt.Fprintf(out, "Mean defenders left: %.2f\n", result.MeanDefendersLeft)
	return nil
}

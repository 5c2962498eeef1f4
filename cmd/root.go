package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"riskbattle/config"
	"riskbattle/engine"
	"riskbattle/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "riskbattle <attacking> <defending>",
	Short: "Automate battles in Risk",
	Long: `Riskbattle resolves the dice of a Risk battle round by round.

Give the total troops in the attacking and the defending territory. Before
every round you choose how many troops attack (1 to 3, always leaving one
behind); an empty answer repeats the last choice and "q" calls off the attack.
The battle ends when the defender is wiped out or the attacker has one troop left.

Troop counts are positional; put them after "--" so a negative number is not
read as a flag, e.g. riskbattle -- 4 -2 (rejected: counts cannot be negative).`,
	Args:          cobra.ExactArgs(2),
	RunE:          runBattle,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/riskbattle/config.yaml)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "seed for the dice (0 picks one from the clock)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("RISKBATTLE")
	// e.g., RISKBATTLE_ODDS_BATTLES for odds.battles
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// setup loads the configuration and configures the global logger.
func setup(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})

	return cfg, nil
}

// parseTroops reads the attacking and defending totals from the arguments.
func parseTroops(args []string) (attacking, defending int, err error) {
	attacking, err = parseTroopCount("attacking", args[0])
	if err != nil {
		return 0, 0, err
	}
	defending, err = parseTroopCount("defending", args[1])
	if err != nil {
		return 0, 0, err
	}
	return attacking, defending, nil
}

func parseTroopCount(side, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s troops %q is not a number", side, arg)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s troops cannot be negative, got %d", side, n)
	}
	return n, nil
}

func runBattle(cmd *cobra.Command, args []string) error {
	attacking, defending, err := parseTroops(args)
	if err != nil {
		return err
	}
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	rules := game.NewStandardRules()
	resolver := game.NewResolver(rules, game.NewRoller(cfg.Seed))
	prompter := engine.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), rules)
	defer prompter.Close()

	e := engine.LocalEngine(attacking, defending, resolver, prompter)
	e.Out = cmd.OutOrStdout()

	outcome, err := e.Run(cmd.Context())
	if errors.Is(err, engine.ErrCancelled) {
		log.Info().Msgf("attack called off after %d rounds", outcome.Rounds)
		return nil
	}
	if err != nil {
		return err
	}

	log.Info().Msgf("battle over after %d rounds, conquered: %t", outcome.Rounds, outcome.Conquered)
	return nil
}

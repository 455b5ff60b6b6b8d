package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/vaultpass/pwgen-go/internal/config"
	"github.com/vaultpass/pwgen-go/internal/crypto"
	"github.com/vaultpass/pwgen-go/internal/generator"
	"github.com/vaultpass/pwgen-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	s := generator.DefaultSettings()
	var seed uint64

	cmd := &cobra.Command{
		Use:   "pwgen",
		Short: "Generate random passwords",
		Long: `Generate random passwords under composition constraints.

Examples:
  pwgen                                   # one 16 character password
  pwgen -l 24 -n 5 --no-similar           # five 24 character passwords
  pwgen --symbols=false --no-duplicate    # letters and digits, no repeats
  pwgen --custom-symbols '$&' --no-start-symbol

Length and amount are capped by MAX_LENGTH and MAX_AMOUNT_USER.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rnd := crypto.DefaultSource()
			if cmd.Flags().Changed("insecure-seed") {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: seeded pseudo-random output is predictable, do not use it for real secrets")
				rnd = crypto.NewPseudoSource(seed)
			}

			// The local user gets the signed-in batch limit.
			limits := config.LoadLimits()
			svc := service.NewGeneratorService(generator.New(rnd), service.GeneratorLimits{
				MaxLength:          limits.MaxLength,
				MaxAmountAnonymous: limits.MaxAmountUser,
				MaxAmountUser:      limits.MaxAmountUser,
			}, nil)

			passwords, err := svc.GenerateSettings(cmd.Context(), 0, s)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
				return err
			}
			for _, p := range passwords {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&s.Length, "length", "l", s.Length, "password length")
	f.IntVarP(&s.Amount, "amount", "n", s.Amount, "number of passwords")
	f.BoolVar(&s.Numbers, "numbers", s.Numbers, "include digits")
	f.BoolVar(&s.Lowercase, "lowercase", s.Lowercase, "include lowercase letters")
	f.BoolVar(&s.Uppercase, "uppercase", s.Uppercase, "include uppercase letters")
	f.BoolVar(&s.Symbols, "symbols", s.Symbols, "include symbols")
	f.StringVar(&s.CustomSymbols, "custom-symbols", "", "symbols to use instead of "+generator.DefaultSymbols)
	f.BoolVar(&s.NoStartNumber, "no-start-number", false, "do not start with a digit")
	f.BoolVar(&s.NoStartSymbol, "no-start-symbol", false, "do not start with a symbol")
	f.BoolVar(&s.NoSimilar, "no-similar", false, "exclude similar characters ("+generator.SimilarChars+")")
	f.BoolVar(&s.NoDuplicate, "no-duplicate", false, "never repeat a character")
	f.BoolVar(&s.NoSequential, "no-sequential", false, "never place adjacent character codes next to each other")
	f.Uint64Var(&seed, "insecure-seed", 0, "use a seeded pseudo-random generator (reproducible, NOT secure)")

	return cmd
}

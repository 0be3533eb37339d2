package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var configPath string
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "chomp",
		Short: "Parser combinator demos: expression evaluation, grammar matching, bit-level decoding",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("verbose") {
				verbosity = cfg.Verbosity
			}
			commonlog.Configure(verbosity, nil)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbose", "v", 0, "log verbosity")

	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newMatchCmd())
	rootCmd.AddCommand(newIPv4Cmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "ttygraph",
	Short: "ttygraph - realtime plotting for the terminal with data input from stdin",
	Long: `ttygraph reads numeric values from stdin and renders them as a live,
auto-scaling graph in the terminal. One value per line draws a single
series; -2 reads two values per line; -k reads "<name> <value>" pairs
and plots every named series it sees.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		exitOnError(err)
		exitOnError(run(cfg))
	},
}

func main() {
	flags := rootCmd.Flags()
	flags.BoolP("two", "2", false, "read two values per line and draw two series")
	flags.BoolP("rate", "r", false, "plot the rate of a counter (divide delta by the sample interval)")
	flags.BoolP("key-value", "k", false, "read <name> <value> pairs and plot one series per name")
	flags.BoolP("bars", "b", false, "draw bars down to the baseline instead of lines")
	flags.StringP("chars", "c", "", "characters to use for the plot lines, eg @ # %")
	flags.StringP("high-error-char", "e", "e", "character drawn when a value exceeds the hard maximum")
	flags.StringP("low-error-char", "E", "v", "character drawn when a value is below the hard minimum")
	flags.Float64P("soft-max", "s", 0, "initial upper scale, values above still widen the plot")
	flags.Float64P("soft-min", "S", 0, "initial lower scale, values below still widen the plot")
	flags.Float64P("hard-max", "m", 0, "fixed upper scale, values above draw the error character")
	flags.Float64P("hard-min", "M", 0, "fixed lower scale, values below draw the error character")
	flags.StringP("title", "t", ".: ttygraph :.", "title of the plot")
	flags.StringP("unit", "u", "", "unit displayed beside the scale labels")
	flags.StringSlice("colors", nil, "colors cycled across series (red, green, blue, ...)")
	flags.String("log-file", "", "write debug logs to this file")
	flags.BoolP("verbose", "v", false, "verbose logging (needs --log-file)")

	viper.SetEnvPrefix("ttygraph")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(flags); err != nil {
		exitOnError(err)
	}

	if err := rootCmd.Execute(); err != nil {
		exitOnError(err)
	}
}

// exitOnError reports a fatal error on stderr and exits with a failure
// status. Configuration problems go through here before the terminal is
// ever acquired.
func exitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)
	os.Exit(1)
}

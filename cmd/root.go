package cmd

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ftl/sliderdrive/pkg/cfg"
	"github.com/ftl/sliderdrive/pkg/slider"
)

var version string = "develop"

var rootCmd = &cobra.Command{
	Use:   "sliderdrive",
	Short: "Drive slider controls in browser-based UI tests",
}

var rootFlags = struct {
	configFile string
}{}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	log.Printf("sliderdrive %s", version)
	rootCmd.PersistentFlags().StringVar(&rootFlags.configFile, "config", "", "configuration file with named slider definitions")
	rootCmd.PersistentFlags().String("driver", "chrome", "browser driver (chrome, webdriver)")
	rootCmd.PersistentFlags().String("browser", "", "websocket address of a running Chrome instance, empty launches a new one (chrome driver)")
	rootCmd.PersistentFlags().String("selenium", "", "address of the Selenium server (webdriver driver)")
	rootCmd.PersistentFlags().String("url", "", "page to open before accessing the slider")
	rootCmd.PersistentFlags().Uint64("seed", 0, "seed for the random value picker, 0 seeds from the current time")

	viper.SetEnvPrefix("sliderdrive")
	viper.AutomaticEnv()
	viper.BindPFlag("driver", rootCmd.PersistentFlags().Lookup("driver"))
	viper.BindPFlag("browser", rootCmd.PersistentFlags().Lookup("browser"))
	viper.BindPFlag("selenium", rootCmd.PersistentFlags().Lookup("selenium"))
	viper.BindPFlag("url", rootCmd.PersistentFlags().Lookup("url"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
}

func loadConfiguration() cfg.Configuration {
	if rootFlags.configFile == "" {
		return cfg.Configuration{}
	}
	configuration, err := cfg.ReadFile(rootFlags.configFile)
	if err != nil {
		log.Fatal(err)
	}
	return configuration
}

func resolveTarget(configuration cfg.Configuration, args []string, selector string, min string, max string) (string, slider.RangeSource) {
	var source slider.RangeSource = slider.FromAttributes()
	var target string

	if len(args) > 0 {
		definition, ok := configuration.SliderByName(args[0])
		if !ok {
			log.Fatalf("there is no slider named %s in the configuration", args[0])
		}
		target = definition.Selector
		source = definition.RangeSource()
	}
	if selector != "" {
		target = selector
	}
	if min != "" || max != "" {
		source = slider.FromStrings(min, max)
	}
	if target == "" {
		log.Fatal("a slider name or --selector is required")
	}

	return target, source
}

func newRng(configuration cfg.Configuration) *rand.Rand {
	seed := viper.GetUint64("seed")
	if seed == 0 {
		seed = configuration.Seed
	}
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, 0))
}

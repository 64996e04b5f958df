package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ftl/sliderdrive/pkg/slider"
)

var checkCmd = &cobra.Command{
	Use:   "check [slider]",
	Short: "Resolve a slider's range and geometry and print the computed offsets without dragging",
	Args:  cobra.MaximumNArgs(1),
	Run:   runCheck,
}

var checkFlags = struct {
	selector string
	min      string
	max      string
}{}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkFlags.selector, "selector", "", "CSS selector of the slider element")
	checkCmd.Flags().StringVar(&checkFlags.min, "min", "", "minimum of the range, overrides the configuration and the element's attributes")
	checkCmd.Flags().StringVar(&checkFlags.max, "max", "", "maximum of the range, overrides the configuration and the element's attributes")
}

func runCheck(cmd *cobra.Command, args []string) {
	ctx, done := signal.NotifyContext(context.Background(), os.Interrupt)
	defer done()

	configuration := loadConfiguration()
	selector, source := resolveTarget(configuration, args, checkFlags.selector, checkFlags.min, checkFlags.max)

	currentSession, err := openSession(ctx, configuration, selector)
	if err != nil {
		log.Fatal(err)
	}
	defer currentSession.close()

	width, err := currentSession.executor.Width(currentSession.element)
	if err != nil {
		log.Fatal(err)
	}
	r, err := slider.ResolveRange(currentSession.executor, currentSession.element, source)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("%s: width %dpx, range [%d, %d]", selector, width, r.Min, r.Max)
	targets := []struct {
		label string
		value int
	}{
		{"min", r.Min},
		{"center", r.Min + (r.Max-r.Min)/2},
		{"max", r.Max},
	}
	for _, target := range targets {
		offset, err := slider.Offset(width, r.Min, r.Max, target.value)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("%6s %5d -> %4dpx", target.label, target.value, offset)
	}
}

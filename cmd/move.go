package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ftl/sliderdrive/pkg/slider"
)

var moveCmd = &cobra.Command{
	Use:   "move [slider]",
	Short: "Move a slider to a specific, random, minimum, or maximum value",
	Args:  cobra.MaximumNArgs(1),
	Run:   runMove,
}

var moveFlags = struct {
	selector string
	value    int
	random   bool
	toMin    bool
	toMax    bool
	min      string
	max      string
}{}

func init() {
	rootCmd.AddCommand(moveCmd)
	moveCmd.Flags().StringVar(&moveFlags.selector, "selector", "", "CSS selector of the slider element")
	moveCmd.Flags().IntVar(&moveFlags.value, "value", 0, "target value")
	moveCmd.Flags().BoolVar(&moveFlags.random, "random", false, "move to a random value within the range")
	moveCmd.Flags().BoolVar(&moveFlags.toMin, "to-min", false, "move to the range's minimum")
	moveCmd.Flags().BoolVar(&moveFlags.toMax, "to-max", false, "move to the range's maximum")
	moveCmd.Flags().StringVar(&moveFlags.min, "min", "", "minimum of the range, overrides the configuration and the element's attributes")
	moveCmd.Flags().StringVar(&moveFlags.max, "max", "", "maximum of the range, overrides the configuration and the element's attributes")
}

func runMove(cmd *cobra.Command, args []string) {
	ctx, done := signal.NotifyContext(context.Background(), os.Interrupt)
	defer done()

	configuration := loadConfiguration()
	selector, source := resolveTarget(configuration, args, moveFlags.selector, moveFlags.min, moveFlags.max)

	currentSession, err := openSession(ctx, configuration, selector)
	if err != nil {
		log.Fatal(err)
	}
	defer currentSession.close()

	positioner := slider.NewPositioner(currentSession.executor, newRng(configuration))
	switch {
	case moveFlags.random:
		err = positioner.MoveToRandom(currentSession.element, source)
	case moveFlags.toMin:
		err = positioner.MoveToMin(currentSession.element, source)
	case moveFlags.toMax:
		err = positioner.MoveToMax(currentSession.element, source)
	case cmd.Flags().Changed("value"):
		err = positioner.MoveTo(currentSession.element, source, moveFlags.value)
	default:
		log.Fatal("one of --value, --random, --to-min, --to-max is required")
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("moved %s", selector)
}

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/panzoom"
	"github.com/phanxgames/panzoom/ecs"
)

var replayECS bool

var replayCmd = &cobra.Command{
	Use:   "replay <script.json>",
	Short: "Run a gesture script and print the resulting transforms",
	Long: `Replay a JSON gesture script on a virtual clock. Every transform and
activation change is printed; the command fails at the first expect step
that does not match.

With --ecs, notifications are routed through a Donburi world and printed by
an event subscriber once the script finishes.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&replayECS, "ecs", false, "deliver notifications through a Donburi world")
}

func runReplay(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	script, err := panzoom.LoadScript(data)
	if err != nil {
		return err
	}
	if script.Config, err = effectiveConfig(cmd, script.Config); err != nil {
		return err
	}

	engine := script.NewEngine(nil)
	engine.SetDebugMode(verbose)
	out := cmd.OutOrStdout()

	var world donburi.World
	if replayECS {
		world = donburi.NewWorld()
		engine.SetEventStore(ecs.NewDonburiStore(world))
		ecs.TransformEventType.Subscribe(world, func(_ donburi.World, ev panzoom.TransformEvent) {
			printEvent(out, ev)
		})
	} else {
		engine.OnTransform(func(ev panzoom.TransformEvent) {
			printEvent(out, ev)
		})
		engine.OnActivationChange(func(t *panzoom.Target, active bool) {
			printEvent(out, panzoom.TransformEvent{
				Type:      panzoom.NotifyActivation,
				Target:    t.ID(),
				Transform: t.Transform(),
				Active:    active,
			})
		})
	}

	runErr := script.Run(engine)
	if world != nil {
		events.ProcessAllEvents(world)
	}
	if runErr != nil {
		return fmt.Errorf("replay %s: %w", args[0], runErr)
	}
	fmt.Fprintf(out, "ok: %d steps\n", script.Len())
	return nil
}

func printEvent(w io.Writer, ev panzoom.TransformEvent) {
	if ev.Type == panzoom.NotifyActivation {
		fmt.Fprintf(w, "%s active=%v\n", ev.Target, ev.Active)
		return
	}
	t := ev.Transform
	fmt.Fprintf(w, "%s scale=%.3f offset=(%.1f, %.1f)", ev.Target, t.Scale, t.OffsetX, t.OffsetY)
	if ev.Transition > 0 {
		fmt.Fprintf(w, " transition=%s", ev.Transition)
	}
	fmt.Fprintln(w)
}

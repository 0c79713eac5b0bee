// Command panzoom opens images in a pan-and-zoom viewer and replays gesture
// scripts against the engine.
package main

import "github.com/phanxgames/panzoom/cmd/panzoom/cmd"

func main() {
	cmd.Execute()
}

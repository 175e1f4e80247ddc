// Command perft is a thin CLI driver over the perft harness (spec §6 CLI
// surface), printing node counts, elapsed time and nodes-per-second per
// depth. It is a consumer of the library, not part of it - the engine core
// neither parses flags nor prints anything.
//
// Grounded on FrankyGo's cmd/FrankyGo/main.go: the same flag.* setup,
// golang.org/x/text/message locale-formatted output, and optional
// github.com/pkg/profile CPU profiling, pared down to the perft-only
// surface this spec's CLI covers.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corechess/engine/internal/perft"
	"github.com/corechess/engine/internal/position"
	"github.com/corechess/engine/internal/util"
	"github.com/corechess/engine/internal/version"
)

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	fenFlag := flag.String("b", position.StartFen, "FEN of the position to run perft from")
	depthFlag := flag.Int("p", 0, "run perft from depth 1 up to this depth")
	colorFlag := flag.String("c", "", "override side to move in -b: w or b")
	divide := flag.Bool("divide", false, "print a per-root-move node count breakdown at the final depth")
	doProfile := flag.Bool("profile", false, "write a CPU profile of the perft run to the working directory")
	flag.Parse()

	if *versionInfo {
		fmt.Println(version.Version())
		return
	}

	if *depthFlag < 1 {
		fmt.Fprintln(os.Stderr, "perft: -p <depth> is required and must be at least 1")
		os.Exit(1)
	}

	fen, err := applyColorOverride(*fenFlag, *colorFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "perft:", err)
		os.Exit(1)
	}

	if *doProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	out.Printf("FEN: %s\n", fen)

	for d := 1; d <= *depthFlag; d++ {
		start := time.Now()
		r, err := perft.Run(fen, d)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintln(os.Stderr, "perft:", err)
			os.Exit(1)
		}
		out.Printf("%d: %d %d %d\n", d, r.Nodes, elapsed.Milliseconds(), util.Nps(r.Nodes, elapsed))
	}

	if *divide {
		div, _, err := perft.RunDivide(fen, *depthFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, "perft:", err)
			os.Exit(1)
		}
		out.Printf("divide at depth %d:\n", *depthFlag)
		for _, d := range div {
			out.Printf("  %s: %d\n", d.Move, d.Nodes)
		}
	}
}

// applyColorOverride replaces the side-to-move field of fen with c ("w" or
// "b"), leaving fen unchanged if c is empty.
func applyColorOverride(fen, c string) (string, error) {
	if c == "" {
		return fen, nil
	}
	if c != "w" && c != "b" {
		return "", fmt.Errorf("invalid -c value %q, expected w or b", c)
	}
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return "", fmt.Errorf("malformed FEN %q", fen)
	}
	fields[1] = c
	return strings.Join(fields, " "), nil
}

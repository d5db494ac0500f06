// Command perft counts move-generation leaf nodes at a fixed depth, the
// standard oracle for verifying a legal move generator.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"

	"github.com/smithy-chess/smithy/internal/board"
	"github.com/smithy-chess/smithy/internal/logx"
)

func main() {
	var (
		fen    = flag.String("fen", board.StartFEN, "position to count from")
		depth  = flag.Int("depth", 4, "ply depth")
		divide = flag.Bool("divide", false, "print per-root-move subtotals")
	)
	flag.Parse()

	log := logx.NewLogger()

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatal().Err(err).Str("fen", *fen).Msg("bad position")
	}
	if *depth < 1 {
		log.Fatal().Int("depth", *depth).Msg("depth must be at least 1")
	}

	start := time.Now()
	var total int64

	if *divide {
		moves := board.Generate(&pos)
		lines := make([]string, 0, moves.Len())
		for i := 0; i < moves.Len(); i++ {
			mp := moves.At(i)
			nodes := perft(&mp.Position, *depth-1)
			total += nodes
			lines = append(lines, fmt.Sprintf("%s: %d", mp.Move, nodes))
		}
		sort.Strings(lines)
		for _, line := range lines {
			fmt.Println(line)
		}
	} else {
		total = perft(&pos, *depth)
	}

	elapsed := time.Since(start)
	log.Info().
		Int("depth", *depth).
		Int64("nodes", total).
		Dur("elapsed", elapsed).
		Msg("perft complete")

	bold := color.New(color.Bold, color.FgGreen)
	if _, err := bold.Fprintf(os.Stdout, "perft(%d) = %d\n", *depth, total); err != nil {
		fmt.Printf("perft(%d) = %d\n", *depth, total)
	}
}

// perft counts leaf nodes by walking the (move, position) pairs the
// generator produces; positions are value copies, so no unmake is needed.
func perft(pos *board.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	moves := board.Generate(pos)
	if depth == 1 {
		return int64(moves.Len())
	}
	var nodes int64
	for i := 0; i < moves.Len(); i++ {
		nodes += perft(&moves.At(i).Position, depth-1)
	}
	return nodes
}

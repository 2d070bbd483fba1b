// isolation plays a match of knight-move Isolation between two AI players, printing the moves.
//
// Example:
//
//	$ go run ./cmd/isolation -config=linear=custom,ab -config2=linear=improved,minimax,max_depth=3 -v=2
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/janpfeifer/isolationGo/internal/parameters"
	"github.com/janpfeifer/isolationGo/internal/players"
	_ "github.com/janpfeifer/isolationGo/internal/players/default"
	"github.com/janpfeifer/isolationGo/internal/profilers"
	"github.com/janpfeifer/isolationGo/internal/searchers"
	. "github.com/janpfeifer/isolationGo/internal/state"
	"github.com/janpfeifer/isolationGo/internal/state/board"
	"github.com/janpfeifer/isolationGo/internal/ui/cli"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	flagAIConfig   = flag.String("config", players.DefaultPlayerConfig, "First AI configuration.")
	flagAIConfig2  = flag.String("config2", players.DefaultPlayerConfig, "Second AI configuration.")
	flagConfigFile = flag.String("config_file", "",
		"YAML file with the parameters of the first AI, one \"key: value\" per line. If set, -config is ignored.")
	flagWidth     = flag.Int("width", board.DefaultSize, "Board width.")
	flagHeight    = flag.Int("height", board.DefaultSize, "Board height.")
	flagTimeLimit = flag.Duration("time_limit", 150*time.Millisecond, "Time limit for each move.")
	flagMaxMoves  = flag.Int("max_moves", 0, "Max moves before the match is stopped without a winner. 0 means no limit.")
	flagColor     = flag.Bool("color", true, "Use colors in the output. Colors are disabled if stdout is not a terminal.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagWidth <= 0 || *flagHeight <= 0 {
		klog.Fatalf("Invalid board size -width=%d, -height=%d", *flagWidth, *flagHeight)
	}
	if *flagTimeLimit <= 0 {
		klog.Fatalf("Invalid -time_limit=%s", *flagTimeLimit)
	}
	if *flagMaxMoves < 0 {
		klog.Fatalf("Invalid -max_moves=%d", *flagMaxMoves)
	}

	// Capture Control+C
	ctx, cancel := cli.SafeInterrupt(context.Background(), 3*time.Second)
	defer cancel()
	profilers.Setup(ctx)
	defer profilers.OnQuit()

	matchName := uuid.NewString()[:8]
	aiPlayers := createPlayers(matchName)
	ui := cli.New(os.Stdout, *flagColor && cli.IsTerminal())
	b := board.New(*flagWidth, *flagHeight)
	ui.PrintMatch(matchName, b.Width(), b.Height(), [NumPlayers]string{aiPlayers[0].String(), aiPlayers[1].String()})

	b, numMoves := playMatch(ctx, ui, aiPlayers, b)
	for _, player := range aiPlayers {
		player.Finalize()
	}
	ui.PrintWinner(b, numMoves)
	if klog.V(1).Enabled() {
		klog.Infof("Final board:\n%s", b)
	}
}

// createPlayers from the flags.
func createPlayers(matchName string) (aiPlayers [NumPlayers]*players.SearcherScorer) {
	if *flagConfigFile != "" {
		f := must.M1(os.Open(*flagConfigFile))
		params := must.M1(parameters.NewFromYAML(f))
		must.M(f.Close())
		klog.V(1).Infof("Parameters from %s: %s", *flagConfigFile, params)
		aiPlayers[PlayerFirst] = must.M1(players.NewFromParams(params))
	} else {
		aiPlayers[PlayerFirst] = must.M1(players.New(*flagAIConfig))
	}
	aiPlayers[PlayerSecond] = must.M1(players.New(*flagAIConfig2))
	for player, aiPlayer := range aiPlayers {
		aiPlayer.WithMatchName(fmt.Sprintf("%s/%s", matchName, PlayerNum(player)))
	}
	return
}

// playMatch until it is finished, interrupted or -max_moves is reached. It returns the last board and
// the number of moves played.
func playMatch(ctx context.Context, ui *cli.UI, aiPlayers [NumPlayers]*players.SearcherScorer, b *board.Board) (
	*board.Board, int) {
	numMoves := 0
	for !IsFinished(b) && (*flagMaxMoves == 0 || numMoves < *flagMaxMoves) {
		if ctx.Err() != nil {
			klog.Warningf("Match interrupted after %d moves", numMoves)
			break
		}
		player := b.NextPlayer()
		moveCtx, moveCancel := context.WithTimeout(ctx, *flagTimeLimit)
		start := time.Now()
		move := aiPlayers[player].Play(b, searchers.ContextClock(moveCtx, *flagTimeLimit))
		elapsed := time.Since(start)
		moveCancel()
		if elapsed > *flagTimeLimit {
			klog.Warningf("Player %s took %s to move, over the %s limit", player, elapsed, *flagTimeLimit)
		}
		if !slices.Contains(b.LegalMoves(player), move) {
			klog.Exitf("Player %s (%s) played an illegal move %s", player, aiPlayers[player], move)
		}
		b = b.Play(move)
		numMoves++
		ui.PrintMove(numMoves, player, move, elapsed)
	}
	return b, numMoves
}

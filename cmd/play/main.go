// Command play is a terminal shell for playing a game against another
// human on the same keyboard. Moves are entered in Long Algebraic
// Notation; a bare coordinate like "e2" lists that piece's legal moves.
package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/smithy-chess/smithy/internal/board"
	"github.com/smithy-chess/smithy/internal/game"
	"github.com/smithy-chess/smithy/internal/logx"
)

type shell struct {
	app    *tview.Application
	boardV *tview.TextView
	status *tview.TextView
	input  *tview.InputField

	history *game.History
	clock   *game.Clock
	legal   board.MoveList
	state   game.GameState
}

func main() {
	var (
		fen      = flag.String("fen", board.StartFEN, "starting position")
		minutes  = flag.Int("minutes", 15, "minutes per side")
		incSecs  = flag.Int("increment", 5, "increment seconds per move")
		saveFile = flag.String("save", "", "write the game history to this file on exit")
		storeDir = flag.String("store", "", "archive the game in a badger store at this directory")
		gameID   = flag.String("id", time.Now().Format("20060102-150405"), "archive id for the game")
	)
	flag.Parse()

	log := logx.NewLogger()

	start, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatal().Err(err).Str("fen", *fen).Msg("bad position")
	}

	s := &shell{
		app:     tview.NewApplication(),
		history: game.NewHistory(start),
		clock: game.NewClock(
			time.Duration(*minutes)*time.Minute,
			time.Duration(*incSecs)*time.Second),
	}
	s.refresh()
	s.clock.Click()

	s.boardV = tview.NewTextView().SetDynamicColors(false)
	s.status = tview.NewTextView().SetDynamicColors(false)
	s.input = tview.NewInputField().SetLabel("move> ")
	s.input.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		s.submit(strings.TrimSpace(s.input.GetText()))
		s.input.SetText("")
	})

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(s.boardV, 12, 0, false).
		AddItem(s.status, 0, 1, false).
		AddItem(s.input, 1, 0, true)

	s.redraw("enter moves like e2e4, e7e8q; 'resign', 'draw' or 'quit' to end")

	if err := s.app.SetRoot(flex, true).SetFocus(s.input).Run(); err != nil {
		log.Fatal().Err(err).Msg("terminal UI failed")
	}

	if *saveFile != "" {
		if err := s.history.SaveFile(*saveFile); err != nil {
			log.Error().Err(err).Str("file", *saveFile).Msg("could not save history")
		}
	}
	if *storeDir != "" {
		store, err := game.OpenStore(*storeDir)
		if err != nil {
			log.Fatal().Err(err).Msg("could not open archive")
		}
		defer store.Close()
		if err := store.SaveGame(*gameID, s.history); err != nil {
			log.Error().Err(err).Str("id", *gameID).Msg("could not archive game")
		} else {
			log.Info().Str("id", *gameID).Msg("game archived")
		}
	}
	fmt.Println(s.state)
}

// refresh regenerates the legal moves and the game state for the current
// position.
func (s *shell) refresh() {
	pos := &s.history.Current().Position
	s.legal = board.Generate(pos)
	s.state = game.Calculate(pos, s.legal.Len(), func() bool {
		return s.history.CountMatches(pos) >= 3
	})
}

func (s *shell) submit(text string) {
	pos := &s.history.Current().Position

	switch strings.ToLower(text) {
	case "":
		return
	case "quit":
		s.app.Stop()
		return
	case "resign":
		s.state = game.WinByResignation(pos.SideToMove().Other())
		s.app.Stop()
		return
	case "draw":
		s.state = game.DrawByAgreement()
		s.app.Stop()
		return
	}

	if s.state.IsGameOver() {
		s.redraw("game is over; 'quit' to leave")
		return
	}

	mover := pos.SideToMove()
	if s.clock.Expired(mover) {
		s.state = game.WinByTimeout(mover.Other(), pos.Board())
		s.app.Stop()
		return
	}

	m := board.ParseMove(text)
	if m.IsInvalid() {
		s.redraw(fmt.Sprintf("invalid move %q", text))
		return
	}

	if m.IsPartial() {
		s.redraw(s.describeMoves(m.From()))
		return
	}

	mp := s.legal.Find(m)
	if mp == nil {
		// A promotion entered without its piece letter.
		if mp = s.legal.Find(board.NewPromotion(m.From(), m.To(), board.Queen)); mp == nil {
			s.redraw(fmt.Sprintf("illegal move %q", text))
			return
		}
	}

	s.history.Append(mp.Move)
	s.clock.Click()
	s.refresh()

	if s.state.IsGameOver() {
		s.redraw(fmt.Sprintf("%s — 'quit' to leave", s.state))
		return
	}
	s.redraw("")
}

// describeMoves lists the legal destinations of the piece on from.
func (s *shell) describeMoves(from board.Square) string {
	var dests []string
	for i := 0; i < s.legal.Len(); i++ {
		if m := s.legal.At(i).Move; m.From() == from {
			dests = append(dests, m.To().String())
		}
	}
	if len(dests) == 0 {
		return fmt.Sprintf("no legal moves from %s", from)
	}
	return fmt.Sprintf("%s can reach: %s", from, strings.Join(dests, " "))
}

func (s *shell) redraw(note string) {
	pos := &s.history.Current().Position
	s.boardV.SetText(pos.Board().String())

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s to move — %d legal moves\n", pos.SideToMove(), s.legal.Len())
	fmt.Fprintf(&sb, "clock %s\n", s.clock)
	fmt.Fprintf(&sb, "%s\n", s.state)
	if note != "" {
		fmt.Fprintf(&sb, "\n%s\n", note)
	}
	s.status.SetText(sb.String())
}

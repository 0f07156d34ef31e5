// Package game runs turns of Sequence between a fixed set of players.
package game

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/palemoky/sequence/internal/apperrors"
	"github.com/palemoky/sequence/internal/game/board"
	"github.com/palemoky/sequence/internal/game/card"
	"github.com/palemoky/sequence/internal/game/deck"
)

// Result is the outcome of a finished game.
type Result struct {
	GameID uuid.UUID
	Winner board.Team
	Turns  int
}

// Turn records what happened during one call to RunTurn.
type Turn struct {
	Number  int
	Player  int
	Team    board.Team
	Skipped bool
	// Dead is the dead card swapped out before playing, if any.
	Dead   *card.Card
	Card   card.Card
	Square board.Square
	// Sequences is the team's sequence count after the chip, set when the chip completed one.
	Sequences int
}

// BoardRenderer renders the board for trace logs.
type BoardRenderer func(b board.View) string

// Game 游戏状态
type Game struct {
	id       uuid.UUID
	players  []Player
	numTeams int
	winAt    int

	hands     []card.Hand
	board     *board.Board
	deck      *deck.Deck
	turnCount int
	upIndex   int
	last      *Turn
	result    *Result

	log    *logrus.Entry
	render BoardRenderer
}

type options struct {
	rng       *rand.Rand
	logger    *logrus.Logger
	boardOpts []board.Option
	render    BoardRenderer
	id        uuid.UUID
}

// Option configures a Game.
type Option func(*options)

// WithRand sets the random source used to shuffle the deck.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithLogger sets the logger. Turn events go to Debug and board dumps to Trace.
func WithLogger(l *logrus.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithInvariantChecks validates the board after every mutation.
func WithInvariantChecks() Option {
	return func(o *options) { o.boardOpts = append(o.boardOpts, board.WithInvariantChecks()) }
}

// WithBoardRenderer sets the renderer used for trace-level board dumps.
func WithBoardRenderer(r BoardRenderer) Option {
	return func(o *options) { o.render = r }
}

// WithID overrides the generated game id.
func WithID(id uuid.UUID) Option {
	return func(o *options) { o.id = id }
}

// New deals a game for players split round-robin into numTeams teams.
func New(players []Player, numTeams int, opts ...Option) (*Game, error) {
	if err := ValidateSetup(len(players), numTeams); err != nil {
		return nil, err
	}
	handSize, _ := HandSize(len(players))
	winAt, _ := WinningSequences(numTeams)

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logrus.New()
		o.logger.SetOutput(io.Discard)
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}

	g := &Game{
		id:       o.id,
		players:  slices.Clone(players),
		numTeams: numTeams,
		winAt:    winAt,
		hands:    make([]card.Hand, len(players)),
		board:    board.New(o.boardOpts...),
		deck:     deck.New(o.rng),
		log:      o.logger.WithField("game", o.id.String()),
		render:   o.render,
	}
	for i := range g.hands {
		g.hands[i] = make(card.Hand, 0, handSize)
		for range handSize {
			g.hands[i] = append(g.hands[i], g.deck.Draw())
		}
	}

	g.log.WithFields(logrus.Fields{
		"players": len(players),
		"teams":   numTeams,
		"hand":    handSize,
	}).Debug("game dealt")
	return g, nil
}

// ID returns the game id.
func (g *Game) ID() uuid.UUID { return g.id }

// Board returns a read-only view of the board.
func (g *Game) Board() board.View { return g.board }

// Deck returns a read-only view of the deck.
func (g *Game) Deck() DeckView { return g.deck }

// NumPlayers returns the number of seats.
func (g *Game) NumPlayers() int { return len(g.players) }

// NumTeams returns the number of teams.
func (g *Game) NumTeams() int { return g.numTeams }

// TurnCount returns the number of turns started so far.
func (g *Game) TurnCount() int { return g.turnCount }

// UpIndex returns the index of the player whose turn is next.
func (g *Game) UpIndex() int { return g.upIndex }

// Hand returns a copy of the hand held by the player at index i.
func (g *Game) Hand(i int) card.Hand { return slices.Clone(g.hands[i]) }

// LastTurn returns the record of the most recent turn.
func (g *Game) LastTurn() (Turn, bool) {
	if g.last == nil {
		return Turn{}, false
	}
	return *g.last, true
}

// Result returns the outcome once the game has been won.
func (g *Game) Result() (Result, bool) {
	if g.result == nil {
		return Result{}, false
	}
	return *g.result, true
}

// Run plays turns until a team wins.
func (g *Game) Run() Result {
	for {
		if res, done := g.RunTurn(); done {
			return res
		}
	}
}

// RunTurn plays the next player's turn. It reports the result once the turn's
// chip completes the winning sequence count.
func (g *Game) RunTurn() (Result, bool) {
	if g.result != nil {
		return *g.result, true
	}

	g.turnCount++
	idx := g.upIndex
	player := g.players[idx]
	team := PlayerTeam(g.numTeams, idx)
	log := g.log.WithFields(logrus.Fields{"turn": g.turnCount, "player": idx, "team": team.String()})
	turn := &Turn{Number: g.turnCount, Player: idx, Team: team}
	g.last = turn

	turn.Dead = g.replaceDeadCard(player, idx, log)

	hand := g.hands[idx]
	if !slices.ContainsFunc(hand, func(c card.Card) bool { return g.board.CanBePlayed(c, team) }) {
		log.WithField("hand", hand.String()).Debug("no playable card, turn skipped")
		turn.Skipped = true
		g.advance()
		return Result{}, false
	}

	cardIndex, sq := player.Play(team, slices.Clone(hand), g.board, g.deck)
	if cardIndex < 0 || cardIndex >= len(hand) {
		panic(apperrors.Violation("play", fmt.Sprintf("card index %d out of range for hand of %d", cardIndex, len(hand))))
	}
	hand, played := hand.RemoveAt(cardIndex)
	g.hands[idx] = hand
	g.deck.Discard(played)
	turn.Card, turn.Square = played, sq

	log.WithFields(logrus.Fields{"card": played.String(), "square": sq.String()}).Debug("card played")
	won := g.placeChip(played, sq, team, turn)
	if g.render != nil && g.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		log.Trace("\n" + g.render(g.board))
	}

	if won {
		g.result = &Result{GameID: g.id, Winner: team, Turns: g.turnCount}
		log.WithField("sequences", g.board.SequenceCount(team)).Debug("team won")
		return *g.result, true
	}

	g.hands[idx] = append(g.hands[idx], g.deck.Draw())
	g.advance()
	return Result{}, false
}

// replaceDeadCard swaps at most one dead card for a fresh draw and returns it.
func (g *Game) replaceDeadCard(player Player, idx int, log *logrus.Entry) *card.Card {
	hand := g.hands[idx]
	var (
		i  int
		ok bool
	)
	if dc, implements := player.(DeadCardChooser); implements {
		i, ok = dc.ReplaceDeadCard(slices.Clone(hand), g.board)
	} else {
		i, ok = FirstDeadCard(hand, g.board)
	}
	if !ok {
		return nil
	}
	if i < 0 || i >= len(hand) {
		panic(apperrors.Violation("replace dead card", fmt.Sprintf("card index %d out of range for hand of %d", i, len(hand))))
	}
	if !g.board.IsDead(hand[i]) {
		panic(apperrors.Violation("replace dead card", fmt.Sprintf("%s is not dead", hand[i])))
	}

	hand, dead := hand.RemoveAt(i)
	g.deck.Discard(dead)
	drawn := g.deck.Draw()
	g.hands[idx] = append(hand, drawn)
	log.WithFields(logrus.Fields{"dead": dead.String(), "drawn": drawn.String()}).Debug("dead card replaced")
	return &dead
}

// placeChip applies the played card to sq and reports whether team has won.
func (g *Game) placeChip(c card.Card, sq board.Square, team board.Team, turn *Turn) bool {
	if !sq.IsPlayable() {
		panic(apperrors.Violation("play", fmt.Sprintf("square %s is not playable", sq)))
	}
	owner, chipped := g.board.ChipAt(sq)

	if c.IsOneEyedJack() {
		switch {
		case !chipped:
			panic(apperrors.Violation("play", fmt.Sprintf("%s needs a chip to remove on %s", c, sq)))
		case owner == team:
			panic(apperrors.Violation("play", fmt.Sprintf("%s cannot remove own chip on %s", c, sq)))
		case g.board.InSequence(sq):
			panic(apperrors.Violation("play", fmt.Sprintf("chip on %s is part of a sequence", sq)))
		}
		g.board.RemoveChip(sq)
		return false
	}

	if chipped {
		panic(apperrors.Violation("play", fmt.Sprintf("square %s is already chipped", sq)))
	}
	if !c.IsTwoEyedJack() {
		if want, _ := g.board.CardAt(sq); want != c {
			panic(apperrors.Violation("play", fmt.Sprintf("%s cannot be played on %s (%s)", c, sq, want)))
		}
	}

	count, created := g.board.AddChip(sq, team)
	if created {
		turn.Sequences = count
	}
	return created && count >= g.winAt
}

func (g *Game) advance() {
	g.upIndex = (g.upIndex + 1) % len(g.players)
}

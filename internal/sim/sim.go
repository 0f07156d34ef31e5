// Package sim plays batches of computer games from a configuration.
package sim

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/palemoky/sequence/internal/bot"
	"github.com/palemoky/sequence/internal/config"
	"github.com/palemoky/sequence/internal/game"
	"github.com/palemoky/sequence/internal/game/board"
	"github.com/palemoky/sequence/internal/storage"
	"github.com/palemoky/sequence/internal/ui"
)

// Recorder persists finished games.
type Recorder interface {
	SaveResult(ctx context.Context, rec *storage.GameRecord) error
}

// Runner plays the games described by a Config.
type Runner struct {
	cfg   *config.Config
	log   *logrus.Logger
	store Recorder
}

// NewRunner returns a runner. store may be nil to skip persistence.
func NewRunner(cfg *config.Config, log *logrus.Logger, store Recorder) *Runner {
	return &Runner{cfg: cfg, log: log, store: store}
}

// Run plays cfg.Simulation.Games games, stopping early when ctx is cancelled.
// It returns the results of the games that finished.
func (r *Runner) Run(ctx context.Context) ([]game.Result, error) {
	results := make([]game.Result, 0, r.cfg.Simulation.Games)
	for i := range r.cfg.Simulation.Games {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		seed := r.seedFor(i)
		g, err := r.NewGame(seed)
		if err != nil {
			return results, err
		}

		res := g.Run()
		results = append(results, res)

		r.log.WithFields(logrus.Fields{
			"game":   res.GameID.String(),
			"index":  i + 1,
			"winner": res.Winner.String(),
			"turns":  res.Turns,
			"seed":   seed,
		}).Info("game finished")

		if r.store != nil {
			rec := storage.NewRecord(res, r.cfg.Simulation.Players, r.cfg.Simulation.Teams, seed)
			if err := r.store.SaveResult(ctx, rec); err != nil {
				return results, fmt.Errorf("record game %d: %w", i+1, err)
			}
		}
	}
	return results, nil
}

// NewGame deals one game seeded with seed.
func (r *Runner) NewGame(seed uint64) (*game.Game, error) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	players := make([]game.Player, 0, len(r.cfg.Simulation.Players))
	for _, name := range r.cfg.Simulation.Players {
		kind, err := bot.ParseKind(name)
		if err != nil {
			return nil, err
		}
		p, err := bot.New(kind, rng, bot.Options{TwoEyedJackCutoff: r.cfg.Simulation.TwoEyedJackCutoff})
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	opts := []game.Option{
		game.WithRand(rng),
		game.WithLogger(r.log),
		game.WithBoardRenderer(func(b board.View) string { return ui.RenderBoard(b) }),
	}
	if r.cfg.Debug.CheckInvariants {
		opts = append(opts, game.WithInvariantChecks())
	}
	return game.New(players, r.cfg.Simulation.Teams, opts...)
}

// seedFor derives the seed of game i. A zero configured seed picks a random one.
func (r *Runner) seedFor(i int) uint64 {
	if r.cfg.Simulation.Seed == 0 {
		return rand.Uint64()
	}
	return r.cfg.Simulation.Seed + uint64(i)
}

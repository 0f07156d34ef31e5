package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/sequence/internal/bot"
	"github.com/palemoky/sequence/internal/game"
	"github.com/palemoky/sequence/internal/sound"
	"github.com/palemoky/sequence/internal/ui"
)

func main() {
	players := flag.String("players", "heuristic,random", "comma separated strategy per seat")
	teams := flag.Int("teams", 2, "number of teams")
	seed := flag.Uint64("seed", 0, "deck seed (0 = random)")
	interval := flag.Duration("interval", ui.DefaultInterval, "autoplay delay between turns")
	soundDir := flag.String("sounds", "", "directory of cue files to play (e.g. "+sound.DefaultDir+")")
	cutoff := flag.Int("cutoff", bot.DefaultTwoEyedJackCutoff, "two-eyed jack cutoff for the heuristic player")
	flag.Parse()

	if *seed == 0 {
		*seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(*seed, *seed))

	var seats []game.Player
	for _, name := range strings.Split(*players, ",") {
		kind, err := bot.ParseKind(name)
		if err != nil {
			log.Fatal(err)
		}
		p, err := bot.New(kind, rng, bot.Options{TwoEyedJackCutoff: *cutoff})
		if err != nil {
			log.Fatal(err)
		}
		seats = append(seats, p)
	}

	g, err := game.New(seats, *teams, game.WithRand(rng))
	if err != nil {
		log.Fatalf("failed to set up game: %v", err)
	}

	viewer := ui.NewViewer(g, *interval)
	if *soundDir != "" {
		sm := sound.NewManager()
		if err := sm.Init(*soundDir); err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			defer sm.Close()
			viewer.WithSound(sm)
		}
	}

	p := tea.NewProgram(viewer, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("viewer exited with error: %v", err)
	}
}

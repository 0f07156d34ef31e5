package game

import (
	"fmt"

	"github.com/palemoky/sequence/internal/apperrors"
	"github.com/palemoky/sequence/internal/game/board"
)

// handSizes maps supported player counts to the number of cards dealt to each player.
var handSizes = map[int]int{
	2:  7,
	3:  6,
	4:  6,
	6:  5,
	8:  4,
	9:  4,
	10: 3,
	12: 3,
}

// winningSequences maps supported team counts to the sequences needed to win.
var winningSequences = map[int]int{
	2: 2,
	3: 1,
}

// HandSize returns the number of cards each player holds in a game of numPlayers.
func HandSize(numPlayers int) (int, error) {
	size, ok := handSizes[numPlayers]
	if !ok {
		return 0, fmt.Errorf("%w: %d", apperrors.ErrUnsupportedPlayerCount, numPlayers)
	}
	return size, nil
}

// WinningSequences returns how many sequences a team needs to win with numTeams teams.
func WinningSequences(numTeams int) (int, error) {
	n, ok := winningSequences[numTeams]
	if !ok {
		return 0, fmt.Errorf("%w: %d", apperrors.ErrUnsupportedTeamCount, numTeams)
	}
	return n, nil
}

// ValidateSetup checks a player/team combination without building a game.
func ValidateSetup(numPlayers, numTeams int) error {
	if _, err := WinningSequences(numTeams); err != nil {
		return err
	}
	if _, err := HandSize(numPlayers); err != nil {
		return err
	}
	if numPlayers%numTeams != 0 {
		return fmt.Errorf("%w: %d teams, %d players", apperrors.ErrTeamsDoNotDividePlayers, numTeams, numPlayers)
	}
	return nil
}

// PlayerTeam returns the team of the player seated at playerIndex.
func PlayerTeam(numTeams, playerIndex int) board.Team {
	return board.Teams[playerIndex%numTeams]
}

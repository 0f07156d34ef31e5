package apperrors

import (
	"errors"
	"fmt"
)

// Configuration errors, surfaced before any turn runs. Callers wrap them with
// the offending value and match with errors.Is.
var (
	ErrUnsupportedPlayerCount  = errors.New("unsupported number of players")
	ErrUnsupportedTeamCount    = errors.New("unsupported number of teams")
	ErrTeamsDoNotDividePlayers = errors.New("number of teams does not divide number of players")
	ErrUnknownStrategy         = errors.New("unknown player strategy")
	ErrInvalidLogLevel         = errors.New("invalid log level")
)

// ContractViolation is the panic value raised when a caller breaks the board or
// engine contract, e.g. a player choosing an illegal square. It is never
// recovered by the engine.
type ContractViolation struct {
	Op     string
	Detail string
}

func (e ContractViolation) Error() string {
	return fmt.Sprintf("contract violation in %s: %s", e.Op, e.Detail)
}

// Violation builds a ContractViolation for use with panic.
func Violation(op, detail string) ContractViolation {
	return ContractViolation{Op: op, Detail: detail}
}

package board

// Team identifies the owner of a chip. The zero value means no team.
type Team int

const (
	NoTeam Team = iota
	TeamOne
	TeamTwo
	TeamThree
)

// Teams lists the playable teams in seat order.
var Teams = []Team{TeamOne, TeamTwo, TeamThree}

var teamNames = map[Team]string{
	NoTeam:    "NONE",
	TeamOne:   "BLUE",
	TeamTwo:   "GREEN",
	TeamThree: "RED",
}

func (t Team) String() string {
	if name, ok := teamNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

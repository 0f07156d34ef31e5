package sound

// Cue names, matched against file base names in the sound directory.
const (
	CueChip     = "chip"
	CueRemove   = "remove"
	CueDead     = "dead"
	CueSequence = "sequence"
	CueWin      = "win"
)

// DefaultDir is where Init looks for cue files unless told otherwise.
const DefaultDir = "assets/sounds"

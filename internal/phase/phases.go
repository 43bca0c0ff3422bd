package phase

// FilePhase tracks how far an individual source file has progressed.
//
// Phase progression must be sequential:
// NotStarted -> Loaded -> Lexed -> Parsed
//
// A file that fails stays at the last phase it completed; transitions are
// validated against the PhasePrerequisites map.
type FilePhase int

const (
	PhaseNotStarted FilePhase = iota // File discovered but not processed
	PhaseLoaded                      // Content read into memory
	PhaseLexed                       // Tokens generated
	PhaseParsed                      // Program built
)

// PhasePrerequisites maps each phase to its required predecessor phase
var PhasePrerequisites = map[FilePhase]FilePhase{
	PhaseLoaded: PhaseNotStarted,
	PhaseLexed:  PhaseLoaded,
	PhaseParsed: PhaseLexed,
}

// CanAdvance reports whether a file at phase from may move to phase to.
func CanAdvance(from, to FilePhase) bool {
	prereq, ok := PhasePrerequisites[to]
	return ok && prereq == from
}

func (p FilePhase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseLoaded:
		return "Loaded"
	case PhaseLexed:
		return "Lexed"
	case PhaseParsed:
		return "Parsed"
	default:
		return "Unknown"
	}
}

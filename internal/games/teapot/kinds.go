// Package teapot implements Carnivorous Teapot: a fixed-tick street arcade
// where a teapot eats lambs and dodges flying vegetables. The package is
// pure simulation logic driven through the registry.Game interface; the
// platform layer owns timing, input wiring, and the terminal.
package teapot

import "github.com/jfuerth/carnivorous-teapot/internal/core"

// Kind tags the closed set of entity variants. Behavior (move, interact,
// finished) dispatches on the tag, which keeps the pairwise interaction
// switch exhaustive and checkable.
type Kind int

const (
	KindPlayer Kind = iota
	KindLamb
	KindBroccoli
	KindOnion
	KindKnife
	KindRoadLine
	KindSidewalk
	KindTitleOverlay
	KindPromptOverlay
	KindCreditsOverlay
	KindGameOverOverlay
	KindHighScoreOverlay
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindLamb:
		return "Lamb"
	case KindBroccoli:
		return "Broccoli"
	case KindOnion:
		return "Onion"
	case KindKnife:
		return "Knife"
	case KindRoadLine:
		return "RoadLine"
	case KindSidewalk:
		return "Sidewalk"
	case KindTitleOverlay:
		return "TitleOverlay"
	case KindPromptOverlay:
		return "PromptOverlay"
	case KindCreditsOverlay:
		return "CreditsOverlay"
	case KindGameOverOverlay:
		return "GameOverOverlay"
	case KindHighScoreOverlay:
		return "HighScoreOverlay"
	default:
		return "Unknown"
	}
}

// sheetName maps a kind to its sprite sheet in the asset library.
func (k Kind) sheetName() string {
	switch k {
	case KindPlayer:
		return "teapot"
	case KindLamb:
		return "lamb"
	case KindBroccoli:
		return "broccoli"
	case KindOnion:
		return "onion"
	case KindKnife:
		return "knife"
	case KindRoadLine:
		return "roadline"
	case KindSidewalk:
		return "sidewalk"
	case KindTitleOverlay:
		return "title"
	case KindPromptOverlay:
		return "prompt"
	case KindCreditsOverlay:
		return "credits"
	case KindGameOverOverlay:
		return "gameover"
	case KindHighScoreOverlay:
		return "highscore"
	default:
		return ""
	}
}

// color maps a kind to its render color.
func (k Kind) color() core.Color {
	switch k {
	case KindPlayer:
		return core.ColorBrightWhite
	case KindLamb:
		return core.ColorWhite
	case KindBroccoli:
		return core.ColorGreen
	case KindOnion:
		return core.ColorBrightMagenta
	case KindKnife:
		return core.ColorBrightCyan
	case KindRoadLine:
		return core.ColorYellow
	case KindSidewalk:
		return core.ColorGray
	case KindTitleOverlay:
		return core.ColorBrightYellow
	case KindGameOverOverlay:
		return core.ColorBrightRed
	case KindHighScoreOverlay:
		return core.ColorBrightGreen
	default:
		return core.ColorDefault
	}
}

// requiredSheets is the readiness barrier: the attract screen refuses to
// start a run until all of these have decoded.
var requiredSheets = []string{
	"teapot", "lamb", "broccoli", "onion", "knife",
	"roadline", "sidewalk",
	"title", "prompt", "credits", "gameover", "highscore",
}

// MotionState is a knife's sub-state, distinct from the game phase.
type MotionState int

const (
	// MotionThrown is a knife in flight after the player fires it.
	MotionThrown MotionState = iota
	// MotionGrounded is a knife lying on the road, collectible as ammo.
	MotionGrounded
)

// String returns the motion state name.
func (m MotionState) String() string {
	if m == MotionGrounded {
		return "grounded"
	}
	return "thrown"
}

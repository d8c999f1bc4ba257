package teapot

// AnimStep names one sheet frame and how many ticks it stays on screen.
type AnimStep struct {
	Frame    int
	Duration int
}

// Animation is an ordered cycle of steps. The clock wraps from the last
// step back to the first.
type Animation []AnimStep

// animTable maps every kind to its named animations. Frame indices refer
// to the kind's sprite sheet; see the assets package for frame layouts.
var animTable = map[Kind]map[string]Animation{
	KindPlayer: {
		"walk":     {{Frame: 0, Duration: 8}, {Frame: 1, Duration: 8}},
		"ready":    {{Frame: 2, Duration: 6}, {Frame: 3, Duration: 6}},
		"defeated": {{Frame: 4, Duration: 10}, {Frame: 5, Duration: 10}},
	},
	KindLamb: {
		"walk": {{Frame: 0, Duration: 10}, {Frame: 1, Duration: 10}},
		"dead": {{Frame: 2, Duration: 1}},
	},
	KindKnife: {
		"spin":     {{Frame: 0, Duration: 3}, {Frame: 1, Duration: 3}},
		"grounded": {{Frame: 2, Duration: 1}},
	},
	KindBroccoli: {
		"fly": {{Frame: 0, Duration: 6}, {Frame: 1, Duration: 6}},
	},
	KindOnion: {
		"fly": {{Frame: 0, Duration: 5}, {Frame: 1, Duration: 5}},
	},
	KindRoadLine: {
		"idle": {{Frame: 0, Duration: 1}},
	},
	KindSidewalk: {
		"idle": {{Frame: 0, Duration: 1}},
	},
	KindTitleOverlay: {
		"idle": {{Frame: 0, Duration: 1}},
	},
	KindPromptOverlay: {
		"idle": {{Frame: 0, Duration: 1}},
	},
	KindCreditsOverlay: {
		"idle": {{Frame: 0, Duration: 1}},
	},
	KindGameOverOverlay: {
		"idle": {{Frame: 0, Duration: 1}},
	},
	KindHighScoreOverlay: {
		"idle": {{Frame: 0, Duration: 1}},
	},
}

// animFor looks up a named animation for a kind. Returns nil if the kind
// or name is unknown; the entity then sticks on frame 0.
func animFor(k Kind, name string) Animation {
	return animTable[k][name]
}

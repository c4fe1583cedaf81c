package analysis

// Level selects which convention checkers run. Levels are cumulative: a
// level runs every checker whose minimum level it satisfies.
type Level uint8

const (
	LevelBasic        Level = iota // bare game rules only
	LevelBeginner                  // clue value, good touch, saves, prompts
	LevelIntermediate              // finesse validity, tempo, stalls, stomps
	LevelAdvanced                  // fix clues, sarcastic discards, blame chains
)

var levelNames = [...]string{"Basic", "Beginner", "Intermediate", "Advanced"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "Unknown"
}

// Checker is one pluggable convention rule: a pure function over the
// per-action context. Checkers never consult each other's output, so
// execution order cannot affect the result.
type Checker struct {
	Name     string
	MinLevel Level
	Check    func(*Context) []Violation
}

// registry lists every checker in the system. The set that actually runs
// is resolved once per Analyze call from the configured level.
var registry = []Checker{
	{Name: "misplay", MinLevel: LevelBasic, Check: checkMisplay},
	{Name: "bad_discard_five", MinLevel: LevelBasic, Check: checkBadDiscardFive},
	{Name: "bad_discard_critical", MinLevel: LevelBasic, Check: checkBadDiscardCritical},
	{Name: "illegal_discard", MinLevel: LevelBasic, Check: checkIllegalDiscard},
	{Name: "illegal_clue", MinLevel: LevelBasic, Check: checkIllegalClue},

	{Name: "min_clue_value", MinLevel: LevelBeginner, Check: checkMinClueValue},
	{Name: "good_touch", MinLevel: LevelBeginner, Check: checkGoodTouch},
	{Name: "missed_save", MinLevel: LevelBeginner, Check: checkMissedSave},
	{Name: "missed_prompt", MinLevel: LevelBeginner, Check: checkMissedPrompt},
	{Name: "missed_finesse", MinLevel: LevelBeginner, Check: checkMissedFinesse},

	{Name: "broken_finesse", MinLevel: LevelIntermediate, Check: checkBrokenFinesse},
	{Name: "double_discard", MinLevel: LevelIntermediate, Check: checkDoubleDiscard},
	{Name: "wrong_prompt", MinLevel: LevelIntermediate, Check: checkWrongPrompt},
	{Name: "stomped_finesse", MinLevel: LevelIntermediate, Check: checkStompedFinesse},

	{Name: "missed_fix_clue", MinLevel: LevelAdvanced, Check: checkMissedFixClue},
	{Name: "missed_sarcastic_discard", MinLevel: LevelAdvanced, Check: checkMissedSarcastic},
	{Name: "information_lock", MinLevel: LevelAdvanced, Check: checkInformationLock},
	{Name: "wrong_ones_order", MinLevel: LevelAdvanced, Check: checkWrongOnesOrder},
	{Name: "misplay_cost", MinLevel: LevelAdvanced, Check: checkMisplayCost},
}

// CheckersForLevel resolves the active checker set for a level.
func CheckersForLevel(level Level) []Checker {
	out := make([]Checker, 0, len(registry))
	for _, c := range registry {
		if c.MinLevel <= level {
			out = append(out, c)
		}
	}
	return out
}

package puzzle

import (
	"math/rand"
	"slices"
)

// Status is the coarse phase of a game.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns a lowercase status name, used for storage and snapshots.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Outcome describes what a Submit did.
type Outcome int

const (
	OutcomeNone     Outcome = iota // Game already finished, nothing changed
	OutcomeSolved                  // A group was found
	OutcomeMistake                 // No group matched, mistakes remain
	OutcomeRevealed                // Last mistake used, all groups revealed
)

// State owns everything about one game session.
// It is not safe for concurrent use; the UI event loop that drives it owns it.
type State struct {
	rng *rand.Rand

	incomplete []Group
	complete   []Group
	items      []string
	active     []string // In selection order

	solved            int
	mistakesRemaining int
	mistakesMade      int
}

// NewState starts a game over groups. mistakes <= 0 means DefaultMistakes.
// rng drives Shuffle; nil uses a time-independent source seeded with 1.
func NewState(groups []Group, mistakes int, rng *rand.Rand) *State {
	if mistakes <= 0 {
		mistakes = DefaultMistakes
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	s := &State{
		rng:               rng,
		incomplete:        slices.Clone(groups),
		complete:          make([]Group, 0, len(groups)),
		items:             flatten(groups),
		active:            make([]string, 0, GroupSize),
		mistakesRemaining: mistakes,
	}
	s.Shuffle()
	return s
}

// ToggleActive selects or deselects item.
// A selected item is always removed. An unselected item is added only while
// fewer than GroupSize items are selected. Items not on the board are ignored.
func (s *State) ToggleActive(item string) {
	if i := slices.Index(s.active, item); i >= 0 {
		s.active = slices.Delete(s.active, i, i+1)
		return
	}
	if len(s.active) >= GroupSize {
		return
	}
	if !slices.Contains(s.items, item) {
		return
	}
	s.active = append(s.active, item)
}

// Shuffle reorders the board. Membership never changes.
func (s *State) Shuffle() {
	s.rng.Shuffle(len(s.items), func(i, j int) {
		s.items[i], s.items[j] = s.items[j], s.items[i]
	})
}

// DeselectAll clears the selection.
func (s *State) DeselectAll() {
	s.active = s.active[:0]
}

// Submit checks the selection against the unsolved groups.
//
// The first unsolved group whose items are all selected is moved to the end
// of the solved list and the board is rebuilt from the remaining groups in
// declaration order. Otherwise one mistake is spent; spending the last one
// reveals every remaining group. The selection is cleared either way.
func (s *State) Submit() Outcome {
	if s.Status() != StatusPlaying {
		return OutcomeNone
	}

	for i, g := range s.incomplete {
		if !s.selectsAll(g) {
			continue
		}
		s.complete = append(s.complete, g)
		s.incomplete = slices.Delete(s.incomplete, i, i+1)
		s.items = flatten(s.incomplete)
		s.solved++
		s.DeselectAll()
		return OutcomeSolved
	}

	s.DeselectAll()
	if s.mistakesRemaining > 0 {
		s.mistakesRemaining--
		s.mistakesMade++
	}
	if s.mistakesRemaining == 0 {
		s.reveal()
		return OutcomeRevealed
	}
	return OutcomeMistake
}

// selectsAll reports whether every item of g is currently selected.
func (s *State) selectsAll(g Group) bool {
	if len(g.Items) == 0 {
		return false
	}
	for _, it := range g.Items {
		if !slices.Contains(s.active, it) {
			return false
		}
	}
	return true
}

// reveal moves all unsolved groups to the solved list in their current order.
func (s *State) reveal() {
	s.complete = append(s.complete, s.incomplete...)
	s.incomplete = s.incomplete[:0]
	s.items = s.items[:0]
}

// Status reports whether the game is still going.
func (s *State) Status() Status {
	switch {
	case s.mistakesRemaining == 0:
		return StatusLost
	case len(s.incomplete) == 0:
		return StatusWon
	default:
		return StatusPlaying
	}
}

// CanSubmit reports whether a submission is meaningful right now.
// The UI should disable submitting otherwise; Submit itself does not check.
func (s *State) CanSubmit() bool {
	return s.Status() == StatusPlaying && len(s.active) == GroupSize
}

// Items returns a copy of the board in display order.
func (s *State) Items() []string {
	return slices.Clone(s.items)
}

// ActiveItems returns a copy of the selection in the order it was made.
func (s *State) ActiveItems() []string {
	return slices.Clone(s.active)
}

// IsActive reports whether item is selected.
func (s *State) IsActive(item string) bool {
	return slices.Contains(s.active, item)
}

// Complete returns the solved (or revealed) groups in the order they were solved.
func (s *State) Complete() []Group {
	return slices.Clone(s.complete)
}

// Incomplete returns the unsolved groups in declaration order.
func (s *State) Incomplete() []Group {
	return slices.Clone(s.incomplete)
}

// Solved returns how many groups the player actually found.
// Revealed groups do not count.
func (s *State) Solved() int {
	return s.solved
}

// MistakesRemaining returns how many wrong submissions are left.
func (s *State) MistakesRemaining() int {
	return s.mistakesRemaining
}

// MistakesMade returns how many wrong submissions were made.
func (s *State) MistakesMade() int {
	return s.mistakesMade
}

package puzzle

import (
	"fmt"
	"strings"
)

// ValidationError contains details about an invalid board.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that groups form a playable board:
//   - exactly GroupCount groups
//   - every group has a category, a difficulty tier and GroupSize items
//   - all items are distinct, ignoring case (the board shows them upper-cased)
//
// The State never calls this. Bad boards are a content defect and are
// rejected when content is loaded.
func Validate(groups []Group) error {
	if len(groups) != GroupCount {
		return ValidationError{
			Code:    "GROUP_COUNT",
			Message: fmt.Sprintf("expected %d groups, got %d", GroupCount, len(groups)),
		}
	}

	seen := make(map[string]string, GroupCount*GroupSize)
	for i, g := range groups {
		if strings.TrimSpace(g.Category) == "" {
			return ValidationError{
				Code:    "EMPTY_CATEGORY",
				Message: fmt.Sprintf("group %d has no category", i+1),
			}
		}
		if !g.Difficulty.Valid() {
			return ValidationError{
				Code:    "INVALID_DIFFICULTY",
				Message: fmt.Sprintf("group %q has difficulty %d, want 1-4", g.Category, int(g.Difficulty)),
			}
		}
		if len(g.Items) != GroupSize {
			return ValidationError{
				Code:    "GROUP_SIZE",
				Message: fmt.Sprintf("group %q has %d items, want %d", g.Category, len(g.Items), GroupSize),
			}
		}

		for _, item := range g.Items {
			if strings.TrimSpace(item) == "" {
				return ValidationError{
					Code:    "EMPTY_ITEM",
					Message: fmt.Sprintf("group %q has an empty item", g.Category),
				}
			}
			key := foldKey(item)
			if owner, dup := seen[key]; dup {
				return ValidationError{
					Code:    "DUPLICATE_ITEM",
					Message: fmt.Sprintf("item %q appears in %q and %q", item, owner, g.Category),
				}
			}
			seen[key] = g.Category
		}
	}

	return nil
}

// Validate checks the puzzle's identifier and its board.
func (p Puzzle) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return ValidationError{Code: "MISSING_ID", Message: "puzzle has no id"}
	}
	if err := Validate(p.Groups); err != nil {
		return fmt.Errorf("puzzle %s: %w", p.ID, err)
	}
	return nil
}

package core

// Color is the semantic colour of a screen cell.
// Games pick a meaning; the platform maps it to terminal styles.
type Color uint8

// Predefined colours for board elements.
const (
	ColorDefault    Color = iota
	ColorMuted            // Secondary text and hints
	ColorAccent           // Titles and highlights
	ColorError            // Mistake feedback
	ColorTile             // Unselected tile
	ColorTileActive       // Selected tile
	ColorCursor           // Cursor marker around a tile
	ColorGroup1           // Solved group, difficulty 1
	ColorGroup2           // Solved group, difficulty 2
	ColorGroup3           // Solved group, difficulty 3
	ColorGroup4           // Solved group, difficulty 4
)

// GroupColor returns the solved-bar colour for a difficulty tier (1-4).
// Out of range tiers get ColorTile.
func GroupColor(difficulty int) Color {
	switch difficulty {
	case 1:
		return ColorGroup1
	case 2:
		return ColorGroup2
	case 3:
		return ColorGroup3
	case 4:
		return ColorGroup4
	default:
		return ColorTile
	}
}

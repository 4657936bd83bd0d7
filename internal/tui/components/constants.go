package components

// Board geometry shared by the renderer and the mouse hit-tester.
// The values describe OUTER sizes (borders included); keep both sides
// in sync when changing them.
const (
	// ColumnOuterWidth is the full width of one rendered column box
	ColumnOuterWidth = 32

	// ColumnContentWidth is the width inside the column border
	ColumnContentWidth = 30

	// ColumnGap is the blank space between adjacent columns
	ColumnGap = 1

	// CardHeight is the fixed outer height of one issue card
	CardHeight = 4

	// CardContentWidth is the width inside the card border
	CardContentWidth = 26

	// ColumnHeaderLines is the rows above the first card inside a
	// column: top border, header, scroll indicator
	ColumnHeaderLines = 3

	// ColumnOverhead is the non-card lines of a column box: header
	// lines plus bottom indicator and bottom border
	ColumnOverhead = 5

	cardTitleMaxLength = 24
)

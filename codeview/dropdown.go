package codeview

// DropdownRequest describes the suggestion popup about to be shown.
type DropdownRequest struct {
	Caret      int
	Candidates int
	ItemHeight int
	MaxVisible int
	// Screen is the widget's visible rectangle in screen coordinates.
	Screen  Rect
	ScrollY int
}

// Placement positions the dropdown. VerticalOffset is relative to the
// bottom edge of the widget, the way popup primitives anchored below a view
// expect it; HorizontalOffset is the caret column within its line and must
// be combined with the host's scroll and inset.
type Placement struct {
	Height           int
	VerticalOffset   int
	HorizontalOffset int
}

// Top returns the popup's top edge for a widget whose bottom edge is at anchorBottom.
func (p Placement) Top(anchorBottom int) int { return anchorBottom + p.VerticalOffset }

func (p Placement) Bottom(anchorBottom int) int { return p.Top(anchorBottom) + p.Height }

// ComputePlacement puts the popup right below the caret's line. When that
// would run past the bottom of the visible screen, the popup is moved up so
// that its bottom sits one item above the screen bottom.
func ComputePlacement(l Layout, r DropdownRequest) Placement {
	line := l.LineForOffset(r.Caret)
	lineBottom := l.LineBottom(line) - r.ScrollY

	n := r.Candidates
	if n > r.MaxVisible {
		n = r.MaxVisible
	}
	height := n * r.ItemHeight

	screenHeight := r.Screen.Height
	bottom := lineBottom + height
	if bottom > screenHeight {
		bottom = screenHeight - r.ItemHeight
	}

	return Placement{
		Height:           height,
		VerticalOffset:   bottom - screenHeight - height,
		HorizontalOffset: l.PrimaryHorizontal(r.Caret),
	}
}

package parameter

// Page hint line
const (
	// HintText is shown on the bottom row over the backdrop
	HintText = "move the mouse · t theme · q quit"

	// HintBottomMargin is the number of rows between the hint and the bottom edge
	HintBottomMargin = 1

	// HintMinWidth hides the hint on narrower screens
	HintMinWidth = 40
)

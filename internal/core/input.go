package core

// Action represents a semantic site action, abstracted from physical key presses.
// Pages switch on actions rather than raw keys so bindings live in one place.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionStart     // start the mini-game
	ActionNextCar   // cycle the car symbol
	ActionNextPage  // tab to the next page in the navbar
	ActionPrevPage  // tab to the previous page
	ActionSelect    // activate the focused control
	ActionBuy       // press the focused "buy me" button
	ActionAccept    // answer yes in a confirmation dialog
	ActionDecline   // answer no in a confirmation dialog
	ActionSubmit    // submit the focused form
	ActionNextField // move focus to the next form field
	ActionPrevField // move focus to the previous form field
	ActionTheme     // open or cycle the theme switcher
	ActionBack
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionStart:
		return "Start"
	case ActionNextCar:
		return "NextCar"
	case ActionNextPage:
		return "NextPage"
	case ActionPrevPage:
		return "PrevPage"
	case ActionSelect:
		return "Select"
	case ActionBuy:
		return "Buy"
	case ActionAccept:
		return "Accept"
	case ActionDecline:
		return "Decline"
	case ActionSubmit:
		return "Submit"
	case ActionNextField:
		return "NextField"
	case ActionPrevField:
		return "PrevField"
	case ActionTheme:
		return "Theme"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

package types

// Navigation directions for the option cursor
const (
	DirectionNext = "next"
	DirectionPrev = "prev"
)

// Navigation actions
type NavigateAction struct {
	Direction string // DirectionNext or DirectionPrev
}

func (a NavigateAction) Type() string { return "navigate" }

// ActivateAction confirms the option under the cursor
type ActivateAction struct{}

func (a ActivateAction) Type() string { return "activate" }

// GoHomeAction returns to the landing page
type GoHomeAction struct{}

func (a GoHomeAction) Type() string { return "go_home" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Pager actions
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type ViewSourceAction struct{}

func (a ViewSourceAction) Type() string { return "view_source" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

package ui

// pagerClosedMsg is sent when the ov pager returns control
type pagerClosedMsg struct {
	title string
	err   error
}

// linkOpenedMsg contains the result of handing a link to the opener
type linkOpenedMsg struct {
	href string
	err  error
}

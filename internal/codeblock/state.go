package codeblock

// State records whether rendering is currently inside a code block and, if so,
// the block's language tag. The zero value is outside any block.
type State struct {
	open     bool
	language string
}

// Enter moves the state into a block. An empty language still counts as a block.
func (s *State) Enter(language string) {
	s.open = true
	s.language = language
}

// Exit leaves the current block. The renderer relies on goldmark pairing every
// enter with an exit, so an unmatched Exit only clears an already clear state.
func (s *State) Exit() {
	s.open = false
	s.language = ""
}

// Reset clears the state at the start of a document.
func (s *State) Reset() {
	*s = State{}
}

// Active reports whether a block is open.
func (s *State) Active() bool {
	return s.open
}

// Language returns the open block's language tag and whether a block is open.
func (s *State) Language() (string, bool) {
	return s.language, s.open
}

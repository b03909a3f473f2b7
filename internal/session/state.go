package session

import (
	"time"

	"github.com/futig/babyname/internal/entity"
)

// State is the per-user data kept between interactions. Handlers get their
// own copy from the Store and write it back when the interaction is done.
type State struct {
	ID             string
	SelectedLetter string
	LastLines      []entity.FormattedLine
	UpdatedAt      time.Time
}

// Clone returns a deep copy of the state
func (s *State) Clone() *State {
	c := *s
	if s.LastLines != nil {
		c.LastLines = make([]entity.FormattedLine, len(s.LastLines))
		for i, l := range s.LastLines {
			c.LastLines[i] = l
			if l.Pair != nil {
				p := *l.Pair
				c.LastLines[i].Pair = &p
			}
		}
	}
	return &c
}

package ui

import (
	"strconv"

	"github.com/olivier-w/folio/internal/glow"
)

type section int

const (
	sectionAbout section = iota
	sectionWork
	sectionSkills
	sectionTimeline
	sectionCerts
	sectionContact
	sectionCount
)

var sectionNames = [sectionCount]string{"About", "Work", "Skills", "Timeline", "Certs", "Contact"}

// navHeight is the number of fixed rows above the scrolling page.
const navHeight = 2

// pageState is shared by every copy of a page Model. It is what the glow
// tracker's bounds callbacks read, so they see the layout of the latest
// render rather than the copy that registered them.
type pageState struct {
	tracker  *glow.Tracker
	cards    map[string]glow.Rect // page coordinates
	sections [sectionCount]int    // first page row of each section
	top      int                  // screen row of page row 0 when unscrolled
	yOffset  int
	closed   bool
}

func newPageState() *pageState {
	return &pageState{
		tracker: glow.NewTracker(),
		cards:   make(map[string]glow.Rect),
		top:     navHeight,
	}
}

// bounds returns the on-screen bounds of a card, queried at call time.
func (s *pageState) bounds(id string) glow.BoundsFunc {
	return func() (glow.Rect, bool) {
		r, ok := s.cards[id]
		if !ok {
			return glow.Rect{}, false
		}
		r.Top += s.top - s.yOffset
		return r, true
	}
}

// activeSection is the last section whose top has scrolled to the top of
// the viewport, or -1 while still in the hero.
func (s *pageState) activeSection() section {
	active := section(-1)
	for i, top := range s.sections {
		if top > 0 && top <= s.yOffset+1 {
			active = section(i)
		}
	}
	return active
}

// cardID names the i-th configured project. Titles need not be unique.
func cardID(i int, title string) string {
	return "work/" + strconv.Itoa(i) + "/" + title
}

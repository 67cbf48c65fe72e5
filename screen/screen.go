//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package screen

import (
	"github.com/nsf/termbox-go"
	ted "github.com/timburks/ted/types"
)

// events are buffered between the poller and the loop
const eventQueueSize = 256

// A Screen owns the terminal through termbox.
type Screen struct {
	events    chan termbox.Event
	done      chan struct{} // closed when the screen is closing
	stopped   chan struct{} // closed when the poller has returned
	interrupt func()
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	return newScreen(termbox.PollEvent, termbox.Interrupt), nil
}

func newScreen(poll func() termbox.Event, interrupt func()) *Screen {
	s := &Screen{
		events:    make(chan termbox.Event, eventQueueSize),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
		interrupt: interrupt,
	}
	// termbox only offers a blocking poll, so read it in the background.
	go s.pump(poll)
	return s
}

// pump forwards polled events until it is interrupted.
func (s *Screen) pump(poll func() termbox.Event) {
	defer close(s.stopped)
	for {
		event := poll()
		if event.Type == termbox.EventInterrupt {
			return
		}
		select {
		case s.events <- event:
		case <-s.done:
			// closing; nobody reads events anymore
		}
	}
}

// stop ends the poller and waits for it to return.
func (s *Screen) stop() {
	close(s.done)
	s.interrupt()
	<-s.stopped
}

// Close stops polling and restores the terminal.
func (s *Screen) Close() {
	s.stop()
	termbox.Close()
}

func (s *Screen) PendingEvents() []*ted.Event {
	pending := make([]*ted.Event, 0)
	for {
		select {
		case event := <-s.events:
			if event.Type == termbox.EventKey {
				pending = append(pending, keyEvent(event))
			}
		default:
			return pending
		}
	}
}

func (s *Screen) Redraw(lines []string) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	for i, line := range lines {
		for j, c := range []rune(line) {
			termbox.SetCell(j, i, c, termbox.ColorDefault, termbox.ColorDefault)
		}
	}
	termbox.Flush()
}

func (s *Screen) SetCursor(cursor ted.Point) {
	termbox.SetCursor(cursor.Col, cursor.Row)
}

func (s *Screen) Flush() {
	termbox.Flush()
}

func keyEvent(event termbox.Event) *ted.Event {
	e := &ted.Event{Ch: event.Ch}
	if event.Mod&termbox.ModAlt != 0 {
		e.Mod |= ted.ModAlt
	}
	if event.Ch != 0 {
		return e
	}
	switch {
	case event.Key == termbox.KeySpace:
		e.Ch = ' '
	case isCtrlLetter(event.Key):
		e.Ch = 'a' + rune(event.Key-termbox.KeyCtrlA)
		e.Mod |= ted.ModCtrl
	default:
		e.Key = key(event.Key)
	}
	return e
}

// isCtrlLetter reports whether k is Ctrl with a letter.
// Backspace, Tab and Enter share codes with Ctrl+H, Ctrl+I and Ctrl+M.
func isCtrlLetter(k termbox.Key) bool {
	switch k {
	case termbox.KeyBackspace, termbox.KeyTab, termbox.KeyEnter:
		return false
	}
	return k >= termbox.KeyCtrlA && k <= termbox.KeyCtrlZ
}

func key(k termbox.Key) ted.Key {
	switch k {
	case termbox.KeyArrowDown:
		return ted.KeyArrowDown
	case termbox.KeyArrowLeft:
		return ted.KeyArrowLeft
	case termbox.KeyArrowRight:
		return ted.KeyArrowRight
	case termbox.KeyArrowUp:
		return ted.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return ted.KeyBackspace
	case termbox.KeyEnter:
		return ted.KeyEnter
	case termbox.KeyEsc:
		return ted.KeyEsc
	default:
		return ted.KeyUnsupported
	}
}

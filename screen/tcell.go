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
	"github.com/gdamore/tcell/v2"
	ted "github.com/timburks/ted/types"
)

// A TcellScreen owns the terminal through tcell.
type TcellScreen struct {
	screen tcell.Screen
	events chan *tcell.EventKey
}

func NewTcellScreen() (*TcellScreen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTcellScreenWith(s)
}

// NewTcellScreenWith initializes s and starts reading its events.
func NewTcellScreenWith(s tcell.Screen) (*TcellScreen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	t := &TcellScreen{screen: s, events: make(chan *tcell.EventKey, eventQueueSize)}
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				// the screen was finalized
				return
			}
			if key, ok := ev.(*tcell.EventKey); ok {
				t.events <- key
			}
		}
	}()
	return t, nil
}

func (t *TcellScreen) Close() {
	t.screen.Fini()
}

func (t *TcellScreen) PendingEvents() []*ted.Event {
	pending := make([]*ted.Event, 0)
	for {
		select {
		case ev := <-t.events:
			pending = append(pending, tcellEvent(ev))
		default:
			return pending
		}
	}
}

func (t *TcellScreen) Redraw(lines []string) {
	t.screen.Clear()
	for i, line := range lines {
		for j, c := range []rune(line) {
			t.screen.SetContent(j, i, c, nil, tcell.StyleDefault)
		}
	}
	t.screen.Show()
}

func (t *TcellScreen) SetCursor(cursor ted.Point) {
	t.screen.ShowCursor(cursor.Col, cursor.Row)
}

func (t *TcellScreen) Flush() {
	t.screen.Show()
}

func tcellEvent(ev *tcell.EventKey) *ted.Event {
	e := &ted.Event{}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		e.Mod |= ted.ModAlt
	}
	switch ev.Key() {
	case tcell.KeyRune:
		e.Ch = ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			e.Mod |= ted.ModCtrl
		}
	case tcell.KeyUp:
		e.Key = ted.KeyArrowUp
	case tcell.KeyDown:
		e.Key = ted.KeyArrowDown
	case tcell.KeyLeft:
		e.Key = ted.KeyArrowLeft
	case tcell.KeyRight:
		e.Key = ted.KeyArrowRight
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.Key = ted.KeyBackspace
	case tcell.KeyEnter:
		e.Key = ted.KeyEnter
	case tcell.KeyEscape:
		e.Key = ted.KeyEsc
	case tcell.KeyTab:
		e.Key = ted.KeyUnsupported
	default:
		if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
			// Backspace, Tab and Enter are matched above
			e.Ch = 'a' + rune(ev.Key()-tcell.KeyCtrlA)
			e.Mod |= ted.ModCtrl
		} else {
			e.Key = ted.KeyUnsupported
		}
	}
	return e
}

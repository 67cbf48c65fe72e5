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
package commander

import (
	"log"
	"time"
	"unicode"

	"github.com/timburks/ted/editor"
	ted "github.com/timburks/ted/types"
)

// TickInterval paces the event loop at about 30 Hz.
const TickInterval = 33 * time.Millisecond

// saveKey is pressed with ModCtrl to save the buffer.
const saveKey = 's'

// The Commander converts user input into commands for the Buffer.
type Commander struct {
	buffer   *editor.Buffer
	mode     int           // loop mode
	Interval time.Duration // sleep between ticks
}

func NewCommander(b *editor.Buffer) *Commander {
	return &Commander{buffer: b, mode: ted.ModeRunning, Interval: TickInterval}
}

func (c *Commander) GetBuffer() *editor.Buffer {
	return c.buffer
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) IsRunning() bool {
	return c.mode != ted.ModeQuit
}

// ProcessEvent applies a single event to the buffer. It reports whether the
// buffer text changed and the screen should be redrawn.
func (c *Commander) ProcessEvent(event *ted.Event) (bool, error) {
	if !c.IsRunning() {
		return false, nil
	}
	e := c.buffer

	key := event.Key
	ch := event.Ch
	if key != ted.KeyNone {
		switch key {
		case ted.KeyEsc:
			c.mode = ted.ModeQuit
		case ted.KeyBackspace:
			if e.GetRowCount() == 0 {
				return false, nil
			}
			e.RemoveChar()
			return true, nil
		case ted.KeyEnter:
			e.NewLine()
			return true, nil
		//
		// cursor movement leaves the text unchanged
		//
		case ted.KeyArrowUp:
			e.MoveUp()
		case ted.KeyArrowDown:
			e.MoveDown()
		case ted.KeyArrowLeft:
			e.MoveLeft()
		case ted.KeyArrowRight:
			e.MoveRight()
		}
		return false, nil
	}
	if ch == 0 {
		return false, nil
	}
	if ch == saveKey && event.Mod&ted.ModCtrl != 0 {
		if err := e.Save(); err != nil {
			return false, err
		}
		log.Printf("saved %d rows to %s", e.GetRowCount(), e.GetFileName())
		return false, nil
	}
	// any other printable character is inserted, whatever its modifiers
	if !unicode.IsPrint(ch) {
		return false, nil
	}
	e.InsertChar(ch)
	return true, nil
}

// Redraw draws the whole buffer.
func (c *Commander) Redraw(d ted.Display) {
	d.Redraw(c.buffer.Lines())
}

// Tick drains pending input, then places the cursor.
// A save failure ends the tick and is returned.
func (c *Commander) Tick(input ted.Input, d ted.Display) error {
	for _, event := range input.PendingEvents() {
		if !c.IsRunning() {
			break
		}
		redraw, err := c.ProcessEvent(event)
		if err != nil {
			return err
		}
		if redraw {
			c.Redraw(d)
		}
	}
	d.SetCursor(c.buffer.GetCursor())
	d.Flush()
	return nil
}

// Run draws the buffer and ticks until the user quits.
func (c *Commander) Run(input ted.Input, d ted.Display) error {
	c.Redraw(d)
	for c.IsRunning() {
		if err := c.Tick(input, d); err != nil {
			return err
		}
		if !c.IsRunning() {
			break
		}
		time.Sleep(c.Interval)
	}
	log.Printf("quit %s", c.buffer.GetFileName())
	return nil
}

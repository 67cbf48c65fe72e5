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
	"strings"

	ted "github.com/timburks/ted/types"
)

// A MemoryScreen draws into memory and replays queued input.
// Each call to PendingEvents returns the next queued batch.
type MemoryScreen struct {
	batches [][]*ted.Event
	Lines   []string
	Cursor  ted.Point
	Redraws int
	Flushes int
	Polls   int
}

func NewMemoryScreen() *MemoryScreen {
	return &MemoryScreen{}
}

// Queue adds a batch of events that arrive together in one tick.
func (m *MemoryScreen) Queue(events ...*ted.Event) {
	m.batches = append(m.batches, events)
}

// Type queues one batch holding a character event for each rune of text.
func (m *MemoryScreen) Type(text string) {
	events := make([]*ted.Event, 0, len(text))
	for _, ch := range text {
		events = append(events, &ted.Event{Ch: ch})
	}
	m.Queue(events...)
}

func (m *MemoryScreen) PendingEvents() []*ted.Event {
	m.Polls++
	if len(m.batches) == 0 {
		return nil
	}
	batch := m.batches[0]
	m.batches = m.batches[1:]
	return batch
}

func (m *MemoryScreen) Redraw(lines []string) {
	m.Redraws++
	m.Lines = append([]string(nil), lines...)
	m.Flushes++
}

func (m *MemoryScreen) SetCursor(cursor ted.Point) {
	m.Cursor = cursor
}

func (m *MemoryScreen) Flush() {
	m.Flushes++
}

// Contents returns the screen text as it would appear on a terminal.
func (m *MemoryScreen) Contents() string {
	return strings.Join(m.Lines, "\r\n")
}

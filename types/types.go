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
package types

// Loop modes
const (
	ModeRunning = 0
	ModeQuit    = 9999
)

type Point struct {
	Row int
	Col int
}

// Keys that are not printable characters.
// Printable characters arrive with Key == KeyNone and a nonzero Ch.
type Key int

const (
	KeyNone Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyBackspace
	KeyEnter
	KeyEsc
	KeyUnsupported
)

type Modifier int

const ModNone Modifier = 0

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
)

// An Event is a single keystroke delivered by an Input.
type Event struct {
	Key Key
	Ch  rune
	Mod Modifier
}

// An Input delivers keystrokes without blocking.
type Input interface {
	// PendingEvents returns every event queued since the last call.
	// It returns immediately when nothing is pending.
	PendingEvents() []*Event
}

// A Display draws buffer contents.
type Display interface {
	// Redraw clears the screen, draws lines from the origin and flushes.
	Redraw(lines []string)
	SetCursor(cursor Point)
	Flush()
}

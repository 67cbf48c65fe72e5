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
package editor

import (
	"testing"

	ted "github.com/timburks/ted/types"
)

func TestMoveRightSaturates(t *testing.T) {
	lines := []string{"ab", "", "cde"}
	b := NewBufferWithLines("test.txt", lines)
	total := 0
	for _, line := range lines {
		total += len(line) + 1
	}
	for i := 0; i < total*2; i++ {
		b.MoveRight()
		cursor := b.GetCursor()
		if cursor.Row < 0 || cursor.Row >= len(lines) {
			t.Fatalf("Cursor row out of range: %+v", cursor)
		}
		if cursor.Col < 0 || cursor.Col > b.GetRowLength(cursor.Row) {
			t.Fatalf("Cursor column out of range: %+v", cursor)
		}
	}
	checkCursor(t, b, 2, 3)
}

func TestMoveRightWraps(t *testing.T) {
	b := NewBufferWithLines("test.txt", []string{"ab", "cd"})
	b.SetCursor(ted.Point{Row: 0, Col: 2})
	b.MoveRight()
	checkCursor(t, b, 1, 0)
}

func TestMoveLeftWraps(t *testing.T) {
	b := NewBufferWithLines("test.txt", []string{"abc", "d"})
	b.SetCursor(ted.Point{Row: 1, Col: 0})
	b.MoveLeft()
	checkCursor(t, b, 0, 3)
	b.SetCursor(ted.Point{Row: 0, Col: 0})
	b.MoveLeft()
	checkCursor(t, b, 0, 0)
}

func TestMoveUpAndDownClampColumn(t *testing.T) {
	b := NewBufferWithLines("test.txt", []string{"a long line", "short", "another long line"})
	b.SetCursor(ted.Point{Row: 0, Col: 8})
	b.MoveDown()
	checkCursor(t, b, 1, 5)
	b.MoveDown()
	// the column is not restored on a longer line
	checkCursor(t, b, 2, 5)
	b.MoveDown()
	checkCursor(t, b, 2, 5)
	b.MoveUp()
	b.MoveUp()
	checkCursor(t, b, 0, 5)
	b.MoveUp()
	checkCursor(t, b, 0, 5)
}

func TestSetCursorClips(t *testing.T) {
	b := NewBufferWithLines("test.txt", []string{"abc", "de"})
	b.SetCursor(ted.Point{Row: 9, Col: 9})
	checkCursor(t, b, 1, 2)
	b.SetCursor(ted.Point{Row: -1, Col: -1})
	checkCursor(t, b, 0, 0)
}

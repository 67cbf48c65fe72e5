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
	ted "github.com/timburks/ted/types"
)

func (b *Buffer) GetCursor() ted.Point {
	return b.cursor
}

// SetCursor moves the cursor to the nearest valid position.
func (b *Buffer) SetCursor(cursor ted.Point) {
	if len(b.rows) == 0 {
		b.cursor = ted.Point{}
		return
	}
	b.cursor.Row = clipToRange(cursor.Row, 0, len(b.rows)-1)
	b.cursor.Col = clipToRange(cursor.Col, 0, b.rows[b.cursor.Row].Length())
}

func (b *Buffer) MoveLeft() {
	if !b.valid() {
		return
	}
	if b.cursor.Col > 0 {
		b.cursor.Col--
	} else if b.cursor.Row > 0 {
		// wrap to the end of the previous row
		b.cursor.Row--
		b.cursor.Col = b.rows[b.cursor.Row].Length()
	}
}

func (b *Buffer) MoveRight() {
	if !b.valid() {
		return
	}
	if b.cursor.Col < b.rows[b.cursor.Row].Length() {
		b.cursor.Col++
	} else if b.cursor.Row < len(b.rows)-1 {
		// wrap to the start of the next row
		b.cursor.Row++
		b.cursor.Col = 0
	}
}

func (b *Buffer) MoveUp() {
	if !b.valid() || b.cursor.Row == 0 {
		return
	}
	b.cursor.Row--
	b.keepCursorInRow()
}

func (b *Buffer) MoveDown() {
	if !b.valid() || b.cursor.Row >= len(b.rows)-1 {
		return
	}
	b.cursor.Row++
	b.keepCursorInRow()
}

// don't go past the end of the current line
func (b *Buffer) keepCursorInRow() {
	if rowLength := b.rows[b.cursor.Row].Length(); b.cursor.Col > rowLength {
		b.cursor.Col = rowLength
	}
}

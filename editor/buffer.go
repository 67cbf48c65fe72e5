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
	"strings"

	ted "github.com/timburks/ted/types"
)

// Lines are written with this separator and no trailing terminator.
const lineSeparator = "\r\n"

// A Buffer represents a file being edited
type Buffer struct {
	rows     []*Row
	cursor   ted.Point
	fileName string
}

// NewBuffer returns an empty document that will be saved to fileName.
// An empty document holds a single empty row.
func NewBuffer(fileName string) *Buffer {
	b := &Buffer{fileName: fileName}
	b.rows = []*Row{NewRow("")}
	return b
}

// NewBufferWithLines is mostly useful in tests.
func NewBufferWithLines(fileName string, lines []string) *Buffer {
	b := &Buffer{fileName: fileName}
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
	return b
}

// LoadBytes replaces the buffer contents. Lines may end with LF or CRLF.
func (b *Buffer) LoadBytes(bytes []byte) {
	lines := strings.Split(string(bytes), "\n")
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(strings.TrimSuffix(line, "\r")))
	}
	b.cursor = ted.Point{}
}

func (b *Buffer) Bytes() []byte {
	return []byte(strings.Join(b.Lines(), lineSeparator))
}

func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.String()
	}
	return lines
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i < 0 || i >= len(b.rows) {
		return 0
	}
	return b.rows[i].Length()
}

func (b *Buffer) TextAfter(row, col int) string {
	if row < 0 || row >= len(b.rows) {
		return ""
	}
	return b.rows[row].TextAfter(col)
}

// valid reports whether the cursor addresses an existing row.
func (b *Buffer) valid() bool {
	return b.cursor.Row >= 0 && b.cursor.Row < len(b.rows)
}

// InsertChar inserts c at the cursor and moves the cursor past it.
// Line terminators are not characters; use NewLine.
func (b *Buffer) InsertChar(c rune) {
	if !b.valid() || c == '\n' || c == '\r' {
		return
	}
	b.rows[b.cursor.Row].InsertChar(b.cursor.Col, c)
	b.MoveRight()
}

// RemoveChar deletes the character before the cursor. At the start of a row
// it joins the row to the previous one.
func (b *Buffer) RemoveChar() {
	if !b.valid() {
		return
	}
	if b.cursor.Col > 0 {
		b.rows[b.cursor.Row].DeleteChar(b.cursor.Col - 1)
		b.MoveLeft()
	} else if b.cursor.Row > 0 {
		current := b.rows[b.cursor.Row]
		remainder := NewRow(current.TextAfter(b.cursor.Col))
		// moving left first puts the cursor at the end of the previous row
		b.MoveLeft()
		b.rows[b.cursor.Row].Join(remainder)
		b.deleteRow(b.cursor.Row + 1)
	}
}

// NewLine splits the current row at the cursor.
func (b *Buffer) NewLine() {
	if !b.valid() {
		return
	}
	newRow := b.rows[b.cursor.Row].Split(b.cursor.Col)
	i := b.cursor.Row + 1
	b.rows = append(b.rows, nil)
	// move rows to make room for the one we are adding
	copy(b.rows[i+1:], b.rows[i:])
	b.rows[i] = newRow
	b.cursor.Row = i
	b.cursor.Col = 0
}

func (b *Buffer) deleteRow(row int) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	b.rows = append(b.rows[0:row], b.rows[row+1:]...)
}

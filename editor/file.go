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
	"fmt"
	"os"
)

// ReadFile creates a buffer from the contents of path.
// The buffer saves back to the same path.
func ReadFile(path string) (*Buffer, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	b := &Buffer{fileName: path}
	b.LoadBytes(bytes)
	return b, nil
}

// Save overwrites the buffer's file with its contents.
// There is no locking and no atomic rename; the last writer wins.
func (b *Buffer) Save() error {
	f, err := os.Create(b.fileName)
	if err == nil {
		_, err = f.Write(b.Bytes())
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", b.fileName, err)
	}
	return nil
}

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
	"os"
	"path/filepath"
	"testing"

	"github.com/steelseries/golisp"
)

func TestParseEvalEditsBuffer(t *testing.T) {
	c, _ := setup(t, "")
	output, err := c.ParseEval(`(type "hello") (enter) (type "world") (line-count)`)
	if err != nil {
		t.Fatalf("Eval failed: %+v", err)
	}
	if output != "2" {
		t.Errorf("Unexpected output: '%s'", output)
	}
	lines := []string{"hello", "world"}
	for i, expected := range lines {
		if text := c.GetBuffer().TextAfter(i, 0); text != expected {
			t.Errorf("Unexpected line %d: '%s'", i, text)
		}
	}
}

func TestParseEvalCursor(t *testing.T) {
	c, _ := setup(t, "abc", "de")
	output, err := c.ParseEval("(right) (right) (right) (down) (col)")
	if err != nil {
		t.Fatalf("Eval failed: %+v", err)
	}
	if output != "2" {
		t.Errorf("Unexpected column: '%s'", output)
	}
	output, err = c.ParseEval("(backspace) (left) (up) (row)")
	if err != nil {
		t.Fatalf("Eval failed: %+v", err)
	}
	if output != "0" {
		t.Errorf("Unexpected row: '%s'", output)
	}
	if text := c.GetBuffer().TextAfter(1, 0); text != "d" {
		t.Errorf("Unexpected text: '%s'", text)
	}
}

func TestParseEvalFileSaves(t *testing.T) {
	c, _ := setup(t, "")
	script := filepath.Join(t.TempDir(), "script.lisp")
	if err := os.WriteFile(script, []byte("(type \"a\")\n(enter)\n(type \"b\")\n(save)\n(quit)\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := c.ParseEvalFile(script); err != nil {
		t.Fatalf("Eval failed: %+v", err)
	}
	if c.IsRunning() {
		t.Errorf("Commander is still running after quit")
	}
	bytes, err := os.ReadFile(c.GetBuffer().GetFileName())
	if err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	if string(bytes) != "a\r\nb" {
		t.Errorf("Unexpected file contents: %q", bytes)
	}
}

func TestParseEvalErrors(t *testing.T) {
	c, _ := setup(t, "")
	if _, err := c.ParseEval("(line 5)"); err == nil {
		t.Errorf("Reading a missing line succeeded")
	}
	if _, err := c.ParseEval("(type 5)"); err == nil {
		t.Errorf("Typing a number succeeded")
	}
}

func TestScriptsEditTheirOwnCommander(t *testing.T) {
	first, _ := setup(t, "")
	second, _ := setup(t, "")
	if _, err := first.ParseEval(`(define (greet) (type "hi")) (greet)`); err != nil {
		t.Fatalf("Eval failed: %+v", err)
	}
	if _, err := second.ParseEval(`(type "yo")`); err != nil {
		t.Fatalf("Eval failed: %+v", err)
	}
	if text := first.GetBuffer().TextAfter(0, 0); text != "hi" {
		t.Errorf("Unexpected first text: '%s'", text)
	}
	if text := second.GetBuffer().TextAfter(0, 0); text != "yo" {
		t.Errorf("Unexpected second text: '%s'", text)
	}
	// nothing stays bound once a script has finished
	if _, err := golisp.ParseAndEval(`(type "x")`); err == nil {
		t.Errorf("Typing outside a script succeeded")
	}
}

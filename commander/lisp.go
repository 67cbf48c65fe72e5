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
	"errors"
	"fmt"
	"log"
	"os"
	"unsafe"

	"github.com/steelseries/golisp"
	ted "github.com/timburks/ted/types"
)

// Each script runs in its own frame, where commanderSymbol is bound to the
// commander it edits. golisp primitives are global and find it from there.
const (
	commanderSymbol = "*commander*"
	commanderType   = "commander"
)

func init() {
	golisp.MakePrimitiveFunction("type", "1", typeImpl)
	golisp.MakePrimitiveFunction("enter", "0", keyImpl(ted.KeyEnter))
	golisp.MakePrimitiveFunction("backspace", "0", keyImpl(ted.KeyBackspace))
	golisp.MakePrimitiveFunction("left", "0", keyImpl(ted.KeyArrowLeft))
	golisp.MakePrimitiveFunction("right", "0", keyImpl(ted.KeyArrowRight))
	golisp.MakePrimitiveFunction("up", "0", keyImpl(ted.KeyArrowUp))
	golisp.MakePrimitiveFunction("down", "0", keyImpl(ted.KeyArrowDown))
	golisp.MakePrimitiveFunction("quit", "0", keyImpl(ted.KeyEsc))
	golisp.MakePrimitiveFunction("save", "0", saveImpl)
	golisp.MakePrimitiveFunction("row", "0", rowImpl)
	golisp.MakePrimitiveFunction("col", "0", colImpl)
	golisp.MakePrimitiveFunction("line-count", "0", lineCountImpl)
	golisp.MakePrimitiveFunction("line", "1", lineImpl)
}

// commanderIn finds the commander bound in env or one of its parents.
func commanderIn(env *golisp.SymbolTableFrame) (*Commander, error) {
	value := env.ValueOf(golisp.SymbolWithName(commanderSymbol))
	if !golisp.ObjectP(value) || golisp.ObjectType(value) != commanderType {
		return nil, errors.New("no buffer is being edited")
	}
	return (*Commander)(golisp.ObjectValue(value)), nil
}

func send(env *golisp.SymbolTableFrame, event *ted.Event) error {
	c, err := commanderIn(env)
	if err != nil {
		return err
	}
	_, err = c.ProcessEvent(event)
	return err
}

func typeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("type requires a string argument")
	}
	for _, ch := range golisp.StringValue(val) {
		event := &ted.Event{Ch: ch}
		if ch == '\n' {
			event = &ted.Event{Key: ted.KeyEnter}
		}
		if err = send(env, event); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func keyImpl(key ted.Key) func(*golisp.Data, *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return nil, send(env, &ted.Event{Key: key})
	}
}

func saveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return nil, send(env, &ted.Event{Ch: saveKey, Mod: ted.ModCtrl})
}

func rowImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := commanderIn(env)
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.buffer.GetCursor().Row)), nil
}

func colImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := commanderIn(env)
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.buffer.GetCursor().Col)), nil
}

func lineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := commanderIn(env)
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.buffer.GetRowCount())), nil
}

func lineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := commanderIn(env)
	if err != nil {
		return nil, err
	}
	val := golisp.Car(args)
	if !golisp.IntegerP(val) {
		return nil, errors.New("line requires an integer argument")
	}
	n := int(golisp.IntegerValue(val))
	if n < 0 || n >= c.buffer.GetRowCount() {
		return nil, fmt.Errorf("line %d is out of range", n)
	}
	return golisp.StringWithValue(c.buffer.TextAfter(n, 0)), nil
}

// ParseEval runs a script against the commander's buffer and returns the
// printed value of its last expression.
func (c *Commander) ParseEval(source string) (string, error) {
	env := golisp.NewSymbolTableFrameBelow(golisp.Global, "ted")
	binding := golisp.ObjectWithTypeAndValue(commanderType, unsafe.Pointer(c))
	if _, err := env.BindLocallyTo(golisp.SymbolWithName(commanderSymbol), binding); err != nil {
		return "", err
	}
	value, err := golisp.ParseAndEvalInEnvironment("(begin "+source+"\n)", env)
	if err != nil {
		log.Printf("ERR %+v", err)
		return "", err
	}
	log.Printf("SEXPR %+v", value)
	return golisp.String(value), nil
}

func (c *Commander) ParseEvalFile(path string) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return c.ParseEval(string(source))
}

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
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/timburks/ted/commander"
	"github.com/timburks/ted/editor"
	"github.com/timburks/ted/screen"
	ted "github.com/timburks/ted/types"
	"golang.org/x/term"
)

const usage = "usage: ted [--tcell] [--eval script] <file>"

// A terminal is a screen that takes input and can be closed.
type terminal interface {
	ted.Input
	ted.Display
	Close()
}

func main() {

	var filename, script string
	useTcell := false

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // eval program
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				fmt.Println("No file specified for --eval option")
				return
			}
		case "--tcell":
			useTcell = true
		default:
			if filename != "" {
				fmt.Println(usage)
				return
			}
			filename = argi
		}
	}
	if filename == "" {
		fmt.Println(usage)
		return
	}

	b, err := openBuffer(filename)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	// The commander converts user inputs into commands for the buffer.
	c := commander.NewCommander(b)

	if script != "" {
		// Run a script and exit.
		output, err := c.ParseEvalFile(script)
		if err != nil {
			log.Fatalf("%+v", err)
		}
		fmt.Println(output)
		return
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Fatalf("ted needs a terminal on standard input")
	}

	// Open a log file so nothing is written over the screen.
	f, err := openLog()
	if err != nil {
		log.Fatalf("%+v", err)
	}
	defer f.Close()
	log.SetOutput(f)
	log.Printf("editing %s (%d rows)", filename, b.GetRowCount())

	s, err := openTerminal(useTcell)
	if err != nil {
		fatal(err)
	}

	// Run the main event loop.
	err = c.Run(s, s)
	// restore the terminal before reporting anything
	s.Close()
	if err != nil {
		fatal(err)
	}
}

// fatal reports err in the log file and on the terminal, then exits.
func fatal(err error) {
	log.Printf("%+v", err)
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// openBuffer reads filename, or starts an empty buffer that will create it.
func openBuffer(filename string) (*editor.Buffer, error) {
	fileinfo, err := os.Stat(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return editor.NewBuffer(filename), nil
	}
	if err != nil {
		return nil, err
	}
	if fileinfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory", filename)
	}
	return editor.ReadFile(filename)
}

func openLog() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(home, ".tedlog"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
}

func openTerminal(useTcell bool) (terminal, error) {
	if useTcell {
		return screen.NewTcellScreen()
	}
	return screen.NewScreen()
}

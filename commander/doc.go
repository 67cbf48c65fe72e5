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

// Package commander converts keystrokes and scripts into edits of a buffer.
// The event loop is a fixed-rate tick: each tick drains whatever input is
// pending without waiting, applies it, places the cursor and sleeps.
// Scripts written in lisp drive the same dispatcher without a terminal.
package commander

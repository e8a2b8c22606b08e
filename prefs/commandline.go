// This file is part of Gophernes.
//
// Gophernes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophernes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophernes.  If not, see <https://www.gnu.org/licenses/>.
package prefs

import (
	"sort"
	"strings"
	"sync"
)

// group is one set of preferences from the command line. the text form is
// "key::value; key::value".
type group map[string]string

// separators in the text form of a group.
const (
	pairSep  = ";"
	valueSep = "::"
)

// parseGroup ignores entries that are not a key/value pair. surrounding space
// is trimmed from both halves.
func parseGroup(s string) group {
	g := make(group)
	for _, p := range strings.Split(s, pairSep) {
		k, v, ok := strings.Cut(p, valueSep)
		if !ok || strings.Contains(v, valueSep) {
			continue
		}
		g[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return g
}

// String returns the group in text form with the keys sorted.
func (g group) String() string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + valueSep + g[k]
	}
	return strings.Join(pairs, pairSep+" ")
}

// the stack of groups. only the top group is consulted.
var (
	stackLock sync.Mutex
	stack     []group
)

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	stackLock.Lock()
	defer stackLock.Unlock()
	return len(stack)
}

// PushCommandLineStack parses a command line and adds it as a new group.
func PushCommandLineStack(prefs string) {
	stackLock.Lock()
	defer stackLock.Unlock()
	stack = append(stack, parseGroup(prefs))
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack(). Entries that were never asked for with
// GetCommandLinePref() are returned in text form so they can be reported.
func PopCommandLineStack() string {
	stackLock.Lock()
	defer stackLock.Unlock()

	if len(stack) == 0 {
		return ""
	}

	top := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	return top.String()
}

// GetCommandLinePref returns the value for the key from the top group. The
// entry is removed so that a value is only ever used once.
func GetCommandLinePref(key string) (bool, Value) {
	stackLock.Lock()
	defer stackLock.Unlock()

	if len(stack) == 0 {
		return false, nil
	}

	top := stack[len(stack)-1]
	v, ok := top[key]
	if !ok {
		return false, nil
	}
	delete(top, key)

	return true, v
}

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
package scripthook

import (
	"io"
	"os"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/logger"
	lua "github.com/yuin/gopher-lua"
)

// Sentinel error patterns.
const (
	ScriptError   = "script: %s: %v"
	MissingAccess = "script: %s: no access() function"
)

// the value read by the CPU when the script cannot supply one
const openBus = 0xff

// Memory is the view of the address space available to scripts.
type Memory interface {
	Peek(addr uint16) uint8
}

// Script is a Lua script attached to the NES as a Hook.
type Script struct {
	name string
	mem  Memory

	L        *lua.LState
	access   *lua.LFunction
	endFrame *lua.LFunction

	frame int
	calls int
	err   error
}

// LoadFile loads and runs the Lua script in the named file. See
// NewScript().
func LoadFile(path string, mem Memory) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(ScriptError, path, err)
	}
	defer f.Close()
	return NewScript(path, f, mem)
}

// NewScript creates a new Lua state, defines the helper functions and runs
// the script. The script must define the access() function by the time it
// has finished running. The name is used in log messages and errors.
func NewScript(name string, src io.Reader, mem Memory) (*Script, error) {
	s := &Script{
		name: name,
		mem:  mem,
		L:    lua.NewState(),
	}

	s.L.SetGlobal("peek", s.L.NewFunction(s.peek))
	s.L.SetGlobal("log", s.L.NewFunction(s.log))

	fn, err := s.L.Load(src, name)
	if err != nil {
		s.L.Close()
		return nil, curated.Errorf(ScriptError, name, err)
	}
	s.L.Push(fn)
	if err := s.L.PCall(0, lua.MultRet, nil); err != nil {
		s.L.Close()
		return nil, curated.Errorf(ScriptError, name, err)
	}

	var ok bool
	s.access, ok = s.L.GetGlobal("access").(*lua.LFunction)
	if !ok {
		s.L.Close()
		return nil, curated.Errorf(MissingAccess, name)
	}
	s.endFrame, _ = s.L.GetGlobal("frame").(*lua.LFunction)

	logger.Logf(logger.Allow, "script", "loaded %s", name)

	return s, nil
}

func (s *Script) String() string {
	return s.name
}

// Close the Lua state. The script must not be used after Close().
func (s *Script) Close() {
	s.L.Close()
}

// Err returns the first error raised by the script during emulation.
func (s *Script) Err() error {
	return s.err
}

// Calls returns the number of times the access() function has been called.
func (s *Script) Calls() int {
	return s.calls
}

// fail records the first error and stops further calls into the script.
func (s *Script) fail(err error) {
	if s.err != nil {
		return
	}
	s.err = curated.Errorf(ScriptError, s.name, err)
	logger.Log(logger.Allow, "script", s.err.Error())
}

// Access implements the hardware.Hook interface.
func (s *Script) Access(addr uint16, data uint8, write bool) uint8 {
	if s.err != nil {
		return openBus
	}
	s.calls++

	err := s.L.CallByParam(lua.P{
		Fn:      s.access,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(addr), lua.LNumber(data), lua.LBool(write))
	if err != nil {
		s.fail(err)
		return openBus
	}

	ret := s.L.Get(-1)
	s.L.Pop(1)

	if n, ok := ret.(lua.LNumber); ok {
		return uint8(int(n))
	}
	return openBus
}

// EndFrame calls the frame() function of the script, if it has one.
func (s *Script) EndFrame() {
	s.frame++
	if s.err != nil || s.endFrame == nil {
		return
	}

	err := s.L.CallByParam(lua.P{
		Fn:      s.endFrame,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(s.frame))
	if err != nil {
		s.fail(err)
	}
}

func (s *Script) peek(L *lua.LState) int {
	addr := L.CheckInt(1)
	var v uint8 = openBus
	if s.mem != nil {
		v = s.mem.Peek(uint16(addr))
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (s *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}

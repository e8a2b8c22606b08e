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
package logger_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()
	tw := &test.Writer{}

	logger.Write(tw)
	test.Equate(t, tw.Compare(""), true)

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.Equate(t, tw.Compare("test: this is a test\n"), true)

	// clear the test.Writer buffer before continuing, makes comparisons easier
	// to manage
	tw.Clear()

	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Write(tw)
	test.Equate(t, tw.Compare("test: this is a test\ntest2: this is another test\n"), true)

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.Equate(t, tw.Compare("test: this is a test\ntest2: this is another test\n"), true)

	// asking for fewer entries is okay too
	tw.Clear()
	logger.Tail(tw, 1)
	test.Equate(t, tw.Compare("test2: this is another test\n"), true)

	// and no entries
	tw.Clear()
	logger.Tail(tw, 0)
	test.Equate(t, tw.Compare(""), true)
}

func TestRepeatedEntries(t *testing.T) {
	logger.Clear()
	tw := &test.Writer{}

	logger.Logf(logger.Allow, "translator", "unknown opcode %#02x", 0xff)
	logger.Logf(logger.Allow, "translator", "unknown opcode %#02x", 0xff)
	logger.Write(tw)
	test.Equate(t, tw.Compare("translator: unknown opcode 0xff (repeat x2)\n"), true)
}

func TestPermission(t *testing.T) {
	logger.Clear()
	tw := &test.Writer{}

	logger.Log(logger.Deny, "test", "should not appear")
	logger.Write(tw)
	test.Equate(t, tw.Compare(""), true)
}

func TestLatch(t *testing.T) {
	logger.Clear()
	tw := &test.Writer{}

	var l logger.Latch
	logger.Logf(l.Permit(0x02), "translator", "unknown opcode %#02x", 0x02)
	logger.Logf(l.Permit(0x02), "translator", "unknown opcode %#02x", 0x02)
	logger.Logf(l.Permit(0x12), "translator", "unknown opcode %#02x", 0x12)
	logger.Write(tw)
	test.Equate(t, tw.Compare("translator: unknown opcode 0x2\ntranslator: unknown opcode 0x12\n"), true)

	l.Reset()
	test.ExpectedSuccess(t, l.Permit(0x02).AllowLogging())
	test.ExpectedFailure(t, l.Permit(0x02).AllowLogging())
}

func TestEcho(t *testing.T) {
	logger.Clear()
	tw := &test.Writer{}

	logger.SetEcho(tw)
	defer logger.SetEcho(nil)

	logger.Log(logger.Allow, "nes", "reset")
	test.Equate(t, tw.Compare("nes: reset\n"), true)

	tw.Clear()
	c := logger.NewColorizer(tw)
	c.Write([]byte("nes: reset\n"))
	test.Equate(t, tw.Contains("\033[36mnes\033[0m: reset"), true)
}

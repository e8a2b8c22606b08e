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
package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/test"
)

func TestEquate(t *testing.T) {
	test.Equate(t, uint8(0xea), 0xea)
	test.Equate(t, uint16(0x8017), 0x8017)
	test.Equate(t, uint32(1024), 1024)
	test.Equate(t, []byte{0x01, 0x02}, []byte{0x01, 0x02})
	test.Equate(t, "foo", "foo")
	test.Equate(t, true, true)
}

func TestWriter(t *testing.T) {
	tw := &test.Writer{}
	test.ExpectedSuccess(t, tw.Compare(""))

	tw.Write([]byte("hello world"))
	test.ExpectedSuccess(t, tw.Compare("hello world"))
	test.ExpectedSuccess(t, tw.Contains("world"))

	tw.Clear()
	test.ExpectedSuccess(t, tw.Compare(""))
}

func TestExpected(t *testing.T) {
	test.ExpectedSuccess(t, nil)
	test.ExpectedSuccess(t, true)
	test.ExpectedFailure(t, false)
	test.ExpectedFailure(t, errors.New("bad blob"))

	err := curated.Errorf("dictionary: %s", "bad blob")
	test.ExpectedSuccess(t, test.ExpectedError(t, err, "dictionary: %s"))
}

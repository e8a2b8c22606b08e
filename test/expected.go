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
package test

import (
	"testing"

	"github.com/jetsetilly/gophernes/curated"
)

// outcome reports whether v is a success and a short description of v for
// failure messages. ok is false if the type of v is not supported.
func outcome(v interface{}) (success bool, desc string, ok bool) {
	switch v := v.(type) {
	case nil:
		return true, "nil", true
	case bool:
		return v, "bool", true
	case error:
		if v == nil {
			return true, "error", true
		}
		return false, "error: " + v.Error(), true
	}
	return false, "", false
}

// ExpectedFailure fails the test unless v is false or a non-nil error.
func ExpectedFailure(t *testing.T, v interface{}) bool {
	t.Helper()

	success, desc, ok := outcome(v)
	if !ok {
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}
	if success {
		t.Errorf("expected failure (%s)", desc)
		return false
	}
	return true
}

// ExpectedSuccess fails the test unless v is true, a nil error or nil.
func ExpectedSuccess(t *testing.T, v interface{}) bool {
	t.Helper()

	success, desc, ok := outcome(v)
	if !ok {
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}
	if !success {
		t.Errorf("expected success (%s)", desc)
		return false
	}
	return true
}

// ExpectedError fails the test unless err was created by curated.Errorf()
// with the sentinel pattern.
func ExpectedError(t *testing.T, err error, sentinel string) bool {
	t.Helper()

	if err == nil {
		t.Errorf("expected error (%s) but got nil", sentinel)
		return false
	}
	if !curated.Is(err, sentinel) {
		t.Errorf("expected error (%s) but got (%v)", sentinel, err)
		return false
	}
	return true
}

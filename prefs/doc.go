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
// Package prefs holds typed preference values and the mechanism for setting
// them from the command line.
//
// Preference values (Bool, Int) are safe to read from any goroutine. Hooks
// can be attached to a value and are called before and after every change.
//
// A Collection groups preference values under a string key. The command line
// stack allows a group of "key::value" pairs, separated by semicolons, to be
// pushed and then consumed by Collection.ApplyCommandLine():
//
//	prefs.PushCommandLineStack("dbt.ignoreunknown::true; dbt.arena::1048576")
//	err := collection.ApplyCommandLine()
//	unused := prefs.PopCommandLineStack()
//
// Keys not consumed by any collection are returned by PopCommandLineStack()
// so that the caller can warn about them.
package prefs

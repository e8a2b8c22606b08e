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

// Package curated is the error type used throughout Gophernes. Curated
// errors are created with Errorf(), which takes a pattern and placeholder
// values in the same way as fmt.Errorf(). The pattern is remembered and is
// what distinguishes one curated error from another:
//
//	const PoolExhausted = "dictionary: %s pool exhausted (capacity %d)"
//
//	err := curated.Errorf(PoolExhausted, "block", 64)
//	if curated.Is(err, PoolExhausted) {
//		...
//	}
//
// Patterns that are meant to be tested by other packages should be exported
// as string constants from the package that raises them. The Sentinel type
// can be used to give such constants a distinct type in documentation but a
// plain string works equally well with Is() and Has().
//
// Has() searches the entire chain. A chain is formed when a curated error is
// used as one of the values of another curated error:
//
//	e := curated.Errorf(PoolExhausted, "block", 64)
//	f := curated.Errorf("compile: %v", e)
//
//	curated.Is(f, PoolExhausted)  // false
//	curated.Has(f, PoolExhausted) // true
//
// The Error() string of a chain is normalised so that adjacent duplicate
// parts are removed. Parts are separated by ": ". This means that wrapping an
// error with the same prefix at several levels of a call stack does not
// result in messages such as "nes: nes: mapper not supported".
//
// Errors that are not curated are considered unexpected. IsAny() reports
// whether an error is curated.
package curated

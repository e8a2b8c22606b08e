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
// Package logger is the central log for Gophernes. There is only one log for
// the entire application and entries are added to it with the package level
// Log() and Logf() functions.
//
// Every entry has a tag and a detail string. Tags identify the part of the
// system making the entry (for example "translator" or "mapper"). Repeated
// entries, ones with the same tag and detail as the previous entry, are
// folded into the previous entry and a repeat count is kept.
//
// The log is bounded. When the maximum number of entries is reached, the
// oldest entries are dropped.
//
// A Permission must be supplied with every logging request. Use logger.Allow
// if the entry should always be made.
package logger

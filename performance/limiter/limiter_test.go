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
package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/performance/limiter"
	"github.com/jetsetilly/gophernes/test"
)

func TestBadRate(t *testing.T) {
	_, err := limiter.NewFPSLimiter(0)
	test.ExpectedSuccess(t, curated.Is(err, limiter.BadRate))
}

func TestWait(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(100)
	test.ExpectedSuccess(t, err)
	defer lim.Close()
	test.Equate(t, lim.Rate(), 100)

	// the first trigger is immediate. the following four are each separated
	// by at least some of the 10ms period
	lim.Wait()
	start := time.Now()
	for i := 0; i < 4; i++ {
		lim.Wait()
	}
	test.ExpectedSuccess(t, time.Since(start) >= 20*time.Millisecond)
}

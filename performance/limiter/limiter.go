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
// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//	defer fps.Close()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		nes.RunFrame()
//	}
package limiter

import (
	"time"

	"github.com/jetsetilly/gophernes/curated"
)

// Sentinel error patterns.
const (
	BadRate = "limiter: rate must be positive (%d)"
)

// this is a really rough attempt at frame rate limiting. probably only any
// good if base performance of the machine is well above the required rate.

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	tick chan bool
	quit chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, curated.Errorf(BadRate, framesPerSecond)
	}

	lim := &FpsLimiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}
	lim.framesPerSecond = framesPerSecond
	lim.secondsPerFrame = time.Second / time.Duration(framesPerSecond)

	go func() {
		adjusted := lim.secondsPerFrame
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}

			// the sleep period is adjusted by the amount the previous sleep
			// overran. time spent waiting for the tick to be taken is not
			// counted
			t := time.Now()
			time.Sleep(adjusted)
			adjusted -= time.Since(t) - lim.secondsPerFrame
			if adjusted < 0 {
				adjusted = 0
			}
			if adjusted > lim.secondsPerFrame {
				adjusted = lim.secondsPerFrame
			}
		}
	}()

	return lim, nil
}

// Close stops the ticker goroutine. Wait() must not be called after Close().
func (lim *FpsLimiter) Close() {
	close(lim.quit)
}

// Rate returns the number of triggers per second.
func (lim *FpsLimiter) Rate() int {
	return lim.framesPerSecond
}

// Wait will block until trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

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
package performance

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/performance/limiter"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the time allowed for the framerate to settle before measurement begins
const leadTime = 2 * time.Second

// Check the performance of the emulator.
//
// Emulation will run for the specified duration and will create a cpu
// profile, memory profile, a trace (or a combination of those) as defined by
// the Profile argument. If fpsCap is true the emulation is limited to the
// NTSC frame rate.
func Check(output io.Writer, profile Profile, nes *hardware.NES, duration string, fpsCap bool) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var lim *limiter.FpsLimiter
	if fpsCap {
		lim, err = limiter.NewFPSLimiter(int(math.Round(FramesPerSecond)))
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer lim.Close()
	}

	_, startFrame := nes.Scanline()
	startStats := nes.Stats()

	runner := func() error {
		// signals false when the leadtime has elapsed and true when the
		// measurement period has finished
		timerChan := make(chan bool, 2)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		performanceBrake := 0
		lastFrame := startFrame

		return nes.Run(func() (bool, error) {
			if lim != nil {
				if _, f := nes.Scanline(); f != lastFrame {
					lastFrame = f
					lim.Wait()
				}
			}

			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return true, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					return false, timedOut
				}
				_, startFrame = nes.Scanline()
				startStats = nes.Stats()
			default:
			}
			return true, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	_, endFrame := nes.Scanline()
	endStats := nes.Stats()

	numFrames := endFrame - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))
	output.Write([]byte(fmt.Sprintf("%d cycles %d exits %d chains\n",
		endStats.Cycles-startStats.Cycles, endStats.Exits-startStats.Exits, endStats.Chains-startStats.Chains)))

	return nil
}

/*
 * MIT License
 *
 * Copyright (c) 2026 msgsock contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package server

import (
	"time"

	"github.com/sabouaram/msgsock/conntable"
	"github.com/sabouaram/msgsock/message"
)

// sweepLoop reports, but never itself destroys, connections that have
// gone silent past KeepAliveProd. Destruction happens on the next
// failed read/peek for that socket, or when the application reacts to
// the timeout message this loop enqueues.
func (s *srv) sweepLoop() {
	defer s.wg.Done()

	period := s.cfg.SweepPeriod().Time()
	if period <= 0 {
		period = time.Minute
	}

	t := time.NewTicker(period)
	defer t.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case now := <-t.C:
			s.sweepOnce(now)
		}
	}
}

func (s *srv) sweepOnce(now time.Time) {
	prod := s.cfg.KeepAliveProd.Time()

	s.table.TryForEach(func(c *conntable.Connection) bool {
		if now.Sub(c.LastKeepAlive()) > prod {
			s.pushSystem(c, message.SoftwareError(message.ReasonTimeout))
		}
		return true
	})
}

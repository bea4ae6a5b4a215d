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
	"net"

	liblog "github.com/nabbar/golib/logger"

	"github.com/sabouaram/msgsock/conntable"
)

// acceptLoop accepts connections until the listener is closed by Stop.
// A failed Accept after shutdown is expected and ends the loop without
// logging: closing the listener is exactly what unblocks it. A failed
// Accept while still running is logged at debug and retried.
func (s *srv) acceptLoop() {
	defer s.wg.Done()

	for {
		c, err := s.listener.Accept()
		if err != nil {
			if !s.running.Load() {
				return
			}
			s.logger().Entry(liblog.DebugLevel, "accept failed, retrying").ErrorAdd(true, err).Log()
			continue
		}

		handle := conntable.Handle(s.nextID.Add(1))
		conn := conntable.NewConnection(handle, c)

		if !s.table.Insert(handle, conn) {
			// A fresh, monotonically increasing handle colliding with an
			// existing entry means the table itself is corrupted: treat
			// it as unrecoverable rather than limping on with a table
			// whose invariants no longer hold.
			s.logger().Fatal("duplicate connection handle", ErrorDuplicateHandle.Error(nil), handle)
			_ = c.Close()
			continue
		}

		s.logger().Entry(liblog.InfoLevel, "connection accepted").FieldAdd("peer", conn.Peer.String()).Log()

		s.wg.Add(1)
		go s.readLoop(conn)
	}
}

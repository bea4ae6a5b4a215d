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

	liblog "github.com/nabbar/golib/logger"

	"github.com/sabouaram/msgsock/conntable"
	"github.com/sabouaram/msgsock/frame"
	"github.com/sabouaram/msgsock/ingress"
	"github.com/sabouaram/msgsock/message"
)

// readLoop owns one accepted connection for its whole life. There is
// no separate notification step the way a non-blocking reactor needs
// one: blocking on frame.ReadOne until it returns a byte or an error
// is itself the "peek" the original MSG_PEEK step existed for.
func (s *srv) readLoop(conn *conntable.Connection) {
	defer s.wg.Done()

	for {
		if s.cfg.ConnIdleTimeout.Time() > 0 {
			_ = conn.Conn.SetReadDeadline(time.Now().Add(s.cfg.ConnIdleTimeout.Time()))
		}

		if !conn.Lock() {
			conn.Unlock()
			return
		}

		res := frame.ReadOne(conn.Conn)

		switch res.Status {
		case frame.StatusSuccess:
			conn.Unlock()
			s.route(conn, res)
			continue

		case frame.StatusClosed:
			conn.Unlock()
			s.pushSystem(conn, message.SoftwareError(message.ReasonConnectionDone))
			s.destroy(conn)
			return

		case frame.StatusError:
			conn.Unlock()
			s.destroy(conn)
			return
		}
	}
}

func (s *srv) route(conn *conntable.Connection, res frame.Result) {
	if res.Message.IsKeepAlive() {
		conn.TouchKeepAlive()
		return
	}

	if !res.Enqueue {
		return
	}

	s.pushSystem(conn, res.Message)
}

func (s *srv) pushSystem(conn *conntable.Connection, msg message.Message) {
	item := ingress.Item{
		Message:    msg,
		PeerAddr:   conn.Peer,
		ReceivedAt: time.Now(),
	}

	if !s.queue.Push(item) {
		s.logger().Entry(liblog.WarnLevel, "ingress queue full, dropping message").
			FieldAdd("peer", conn.Peer.String()).
			FieldAdd("type", string(msg.Type)).
			Log()
	}
}

// destroy removes conn from the table and closes its socket exactly
// once, regardless of which goroutine calls it first.
func (s *srv) destroy(conn *conntable.Connection) {
	s.table.Remove(conn.Handle)
	conn.Destroy(func() {
		_ = conn.Conn.Close()
	})
}

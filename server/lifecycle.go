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
	"context"
	"crypto/tls"
	"net"

	liblog "github.com/nabbar/golib/logger"

	"github.com/sabouaram/msgsock/conntable"
)

func (s *srv) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running.Load() {
		s.mu.Unlock()
		return ErrorAlreadyRunning.Error(nil)
	}

	ln, err := net.Listen("tcp", s.cfg.ListenAddress)
	if err != nil {
		s.mu.Unlock()
		return ErrorListen.Error(err)
	}

	if s.cfg.TLS != nil {
		host, _, splitErr := net.SplitHostPort(s.cfg.ListenAddress)
		if splitErr != nil {
			host = ""
		}
		ln = tls.NewListener(ln, s.cfg.TLS.New().TLS(host))
	}

	s.listener = ln
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.running.Store(true)
	s.gone.Store(false)
	s.mu.Unlock()

	s.logger().Entry(liblog.InfoLevel, "server listening").FieldAdd("address", s.cfg.ListenAddress).Log()

	s.wg.Add(2)
	go s.acceptLoop()
	go s.sweepLoop()

	return nil
}

func (s *srv) Stop() error {
	s.mu.Lock()
	if !s.running.Load() {
		s.mu.Unlock()
		return ErrorNotRunning.Error(nil)
	}

	s.running.Store(false)
	s.cancel()

	ln := s.listener
	s.listener = nil
	s.mu.Unlock()

	if ln != nil {
		_ = ln.Close()
	}

	// destroy removes from the table, which needs the write guard, so
	// collect first and tear down outside ForEach's read guard.
	var conns []*conntable.Connection
	s.table.ForEach(func(c *conntable.Connection) bool {
		conns = append(conns, c)
		return true
	})
	for _, c := range conns {
		s.destroy(c)
	}

	s.wg.Wait()
	s.queue.DrainAndFree()
	s.gone.Store(true)

	s.logger().Entry(liblog.InfoLevel, "server stopped").Log()
	return nil
}

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
	"net"
	"sort"
	"sync"
	"sync/atomic"

	liblog "github.com/nabbar/golib/logger"

	"github.com/sabouaram/msgsock/config"
	"github.com/sabouaram/msgsock/conntable"
	"github.com/sabouaram/msgsock/ingress"
)

type srv struct {
	mu sync.RWMutex

	cfg *config.Config
	log liblog.FuncLog

	table conntable.Table
	queue ingress.Queue

	listener net.Listener
	ctx      context.Context
	cancel   context.CancelFunc

	wg      sync.WaitGroup
	running atomic.Bool
	gone    atomic.Bool
	nextID  atomic.Uint64
}

// logger returns the injected logger, falling back to the package
// default the same way the rest of the stack does when none was
// configured.
func (s *srv) logger() liblog.Logger {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.log == nil {
		return liblog.GetDefault()
	} else if l := s.log(); l == nil {
		return liblog.GetDefault()
	} else {
		return l
	}
}

func (s *srv) IsRunning() bool {
	return s.running.Load()
}

func (s *srv) IsGone() bool {
	return s.gone.Load()
}

func (s *srv) OpenConnections() int {
	return s.table.Len()
}

func (s *srv) ReadMessage() (ingress.Item, bool) {
	return s.queue.Pop()
}

func (s *srv) GetConnectedList() []string {
	peers := s.table.Peers()
	sort.Strings(peers)
	return peers
}

func (s *srv) Addr() net.Addr {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

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

	liblog "github.com/nabbar/golib/logger"

	"github.com/sabouaram/msgsock/config"
	"github.com/sabouaram/msgsock/conntable"
	"github.com/sabouaram/msgsock/ingress"
)

// Server owns one listening socket, its connection table, and its
// ingress queue.
type Server interface {
	// Start binds the listener and launches the accept and sweep
	// goroutines. It returns once the listener is bound; it does not
	// block for the server's lifetime.
	Start(ctx context.Context) error

	// Stop closes the listener, destroys every tracked connection and
	// drains the ingress queue. Safe to call more than once.
	Stop() error

	// ReadMessage pops the oldest pending ingress.Item, if any.
	ReadMessage() (ingress.Item, bool)

	// GetConnectedList returns the peer addresses of every connection
	// currently open, sorted for stable output.
	GetConnectedList() []string

	// IsRunning reports whether Start has succeeded and Stop has not
	// yet been called.
	IsRunning() bool

	// IsGone reports whether Stop has run to completion: the listener
	// closed, every tracked connection destroyed, and the ingress queue
	// drained. False before Start and while running.
	IsGone() bool

	// OpenConnections returns the number of connections currently
	// tracked.
	OpenConnections() int

	// Addr returns the listener's bound address. Only meaningful after
	// a successful Start, useful when ListenAddress used a ":0" port.
	Addr() net.Addr
}

// New returns a Server bound to cfg. log may be nil, in which case the
// logger package's default instance is used.
func New(cfg *config.Config, log liblog.FuncLog) Server {
	return &srv{
		cfg:   cfg,
		log:   log,
		table: conntable.New(),
		queue: ingress.New(cfg.QueueCapacity),
	}
}

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

package conntable

import (
	"net"
	"sync"
	"sync/atomic"
	"time"
)

// Handle identifies a Connection uniquely while it lives in the Table.
// It is an internal monotonic counter, not a raw OS socket descriptor:
// Go gives no portable way to mint or compare file descriptors directly,
// and a counter serves the same purpose (a stable, comparable key).
type Handle uint64

// State is the lifecycle stage of a Connection. It only ever moves
// forward: Open -> Closing -> Closed.
type State int32

const (
	StateOpen State = iota
	StateClosing
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Connection is the table's record of one accepted socket.
//
// readLock serializes Frame Reader turns on Conn; destroyOnce makes
// teardown idempotent regardless of whether the read loop, the Stop
// path, or both race to tear the same Connection down.
type Connection struct {
	Handle Handle
	Peer   net.Addr
	Conn   net.Conn

	lastKeepAlive atomic.Int64 // unix nanoseconds
	state         atomic.Int32

	readLock    sync.Mutex
	destroyOnce sync.Once
}

// NewConnection wraps an accepted net.Conn into a table-ready record,
// with LastKeepAlive initialized to now.
func NewConnection(handle Handle, conn net.Conn) *Connection {
	c := &Connection{
		Handle: handle,
		Peer:   conn.RemoteAddr(),
		Conn:   conn,
	}
	c.state.Store(int32(StateOpen))
	c.touchKeepAlive(time.Now())
	return c
}

// State returns the Connection's current lifecycle stage.
func (c *Connection) State() State {
	return State(c.state.Load())
}

// LastKeepAlive returns the wall-clock time of the last received
// KEEP_ALIVE (or accept time, if none has arrived yet).
func (c *Connection) LastKeepAlive() time.Time {
	return time.Unix(0, c.lastKeepAlive.Load())
}

func (c *Connection) touchKeepAlive(t time.Time) {
	// last_keep_alive is monotonically non-decreasing: a CAS loop
	// never lets an older timestamp overwrite a newer one, even if two
	// callers race. NewConnection sets the initial value before the
	// Connection is inserted or handed to its reader goroutine.
	n := t.UnixNano()
	for {
		cur := c.lastKeepAlive.Load()
		if n <= cur {
			return
		}
		if c.lastKeepAlive.CompareAndSwap(cur, n) {
			return
		}
	}
}

// TouchKeepAlive refreshes LastKeepAlive to now. Called by the Frame
// Reader when a KEEP_ALIVE frame arrives.
func (c *Connection) TouchKeepAlive() {
	c.touchKeepAlive(time.Now())
}

// Lock acquires the Connection's read lock, serializing Frame Reader
// turns. It returns false if the Connection is no longer Open once
// acquired, so the caller can bail out on a race with a concurrent
// close instead of reading from a socket that's going away.
func (c *Connection) Lock() (stillOpen bool) {
	c.readLock.Lock()
	return c.State() == StateOpen
}

// Unlock releases the read lock acquired by Lock.
func (c *Connection) Unlock() {
	c.readLock.Unlock()
}

// Destroy runs fn exactly once for this Connection: the state moves to
// Closing before fn runs and to Closed after it returns. Safe to call
// from multiple goroutines
// racing to tear the same Connection down (the read loop observing an
// error, and Stop closing every live connection).
func (c *Connection) Destroy(fn func()) {
	c.destroyOnce.Do(func() {
		c.state.Store(int32(StateClosing))
		if fn != nil {
			fn()
		}
		c.state.Store(int32(StateClosed))
	})
}

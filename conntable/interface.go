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

// Table is a concurrency-safe mapping from Handle to *Connection.
type Table interface {
	// Insert adds conn under handle. It is a fatal invariant violation
	// to insert a handle already present; Insert returns false in that
	// case and leaves the table unchanged.
	Insert(handle Handle, conn *Connection) (ok bool)

	// Remove deletes handle and returns the removed Connection. ok is
	// false if handle was not present.
	Remove(handle Handle) (conn *Connection, ok bool)

	// Lookup returns the Connection registered for handle, if any. The
	// reference is valid only while the caller also holds the
	// Connection's own read lock (see Connection.Lock).
	Lookup(handle Handle) (conn *Connection, ok bool)

	// ForEach visits every Connection currently in the table, holding
	// the table guard for the whole call. Meant for infrequent,
	// short-lived visitors.
	ForEach(visitor func(*Connection) bool)

	// TryForEach behaves like ForEach but never blocks: if the guard is
	// contended it returns false immediately without visiting anything.
	TryForEach(visitor func(*Connection) bool) (ran bool)

	// Len returns the number of connections currently tracked.
	Len() int

	// Peers returns a snapshot of the peer addresses of every tracked
	// connection.
	Peers() []string
}

// New returns an empty, ready-to-use Table.
func New() Table {
	return &table{
		m: make(map[Handle]*Connection),
	}
}

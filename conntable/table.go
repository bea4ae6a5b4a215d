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

import "sync"

// table is the default Table implementation: a plain map behind a
// sync.RWMutex. sync.Map is deliberately not used here — it has no
// TryLock equivalent, and the sweeper needs to skip a round under
// contention rather than block, which only a Lock/TryLock pair gives
// us.
type table struct {
	mu sync.RWMutex
	m  map[Handle]*Connection
}

func (t *table) Insert(handle Handle, conn *Connection) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.m[handle]; exists {
		return false
	}

	t.m[handle] = conn
	return true
}

func (t *table) Remove(handle Handle) (*Connection, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c, ok := t.m[handle]
	if !ok {
		return nil, false
	}

	delete(t.m, handle)
	return c, true
}

func (t *table) Lookup(handle Handle) (*Connection, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	c, ok := t.m[handle]
	return c, ok
}

func (t *table) ForEach(visitor func(*Connection) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, c := range t.m {
		if !visitor(c) {
			return
		}
	}
}

func (t *table) TryForEach(visitor func(*Connection) bool) bool {
	if !t.mu.TryLock() {
		return false
	}
	defer t.mu.Unlock()

	for _, c := range t.m {
		if !visitor(c) {
			break
		}
	}

	return true
}

func (t *table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.m)
}

func (t *table) Peers() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]string, 0, len(t.m))
	for _, c := range t.m {
		out = append(out, c.Peer.String())
	}
	return out
}

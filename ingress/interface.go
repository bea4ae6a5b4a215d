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

package ingress

// Queue is a FIFO of Item values, safe for any number of concurrent
// producers and one consumer.
type Queue interface {
	// Push enqueues item at the tail. It never blocks: it returns false
	// if the queue has been stopped or is momentarily full, in which
	// case the item is dropped.
	Push(item Item) bool

	// Pop removes and returns the head item. ok is false if the queue
	// is currently empty; Pop never blocks waiting for one.
	Pop() (item Item, ok bool)

	// Len returns the number of items currently queued.
	Len() int

	// DrainAndFree releases any remaining items and marks the queue
	// stopped: subsequent Push calls return false.
	DrainAndFree()
}

// New returns a Queue backed by a channel of the given capacity. A
// capacity of 0 or less uses DefaultCapacity.
func New(capacity int) Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &queue{
		ch: make(chan Item, capacity),
	}
}

// DefaultCapacity is used by New when called with a non-positive
// capacity. It is sized generously so Push practically never drops an
// item under normal load; the contract is non-blocking, not
// infinite buffering.
const DefaultCapacity = 4096

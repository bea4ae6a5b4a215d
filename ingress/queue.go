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

import "sync/atomic"

type queue struct {
	ch      chan Item
	stopped atomic.Bool
}

func (q *queue) Push(item Item) bool {
	if q.stopped.Load() {
		return false
	}

	select {
	case q.ch <- item:
		return true
	default:
		return false
	}
}

func (q *queue) Pop() (Item, bool) {
	select {
	case it := <-q.ch:
		return it, true
	default:
		return Item{}, false
	}
}

func (q *queue) Len() int {
	return len(q.ch)
}

func (q *queue) DrainAndFree() {
	q.stopped.Store(true)

	for {
		select {
		case <-q.ch:
		default:
			return
		}
	}
}

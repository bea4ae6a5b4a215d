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

package frame

import "github.com/sabouaram/msgsock/message"

// Status reports what ReadOne accomplished on a single call.
type Status int

const (
	// StatusSuccess means a full frame was read. Result.Enqueue says
	// whether the caller should push it to the ingress queue (false
	// for a KEEP_ALIVE, which only touches the connection).
	StatusSuccess Status = iota

	// StatusClosed means the peer went away before or during the
	// pre-frame byte: no frame was in flight. Result.Message is left
	// empty; the caller builds and enqueues its own connection-closed
	// message and destroys the connection.
	StatusClosed

	// StatusError means a frame was in progress and the read failed,
	// or a byte arrived that could not start a frame. The connection
	// is no longer usable and must be destroyed; nothing is enqueued.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusClosed:
		return "closed"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of one ReadOne call.
type Result struct {
	Message message.Message
	Enqueue bool
	Status  Status
}

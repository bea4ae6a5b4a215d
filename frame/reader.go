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

import (
	"io"

	"github.com/sabouaram/msgsock/message"
)

// ReadOne reads exactly one frame from r, blocking until a full frame
// arrives, the peer disconnects, or the stream can no longer produce
// one.
//
// Leading '\n' and '\r' bytes are discarded before the opening '{' is
// found; this loop is iterative on purpose, not recursive, so a long
// run of bare newlines (telnet keepalive probes, buggy clients) cannot
// exhaust the stack. Any other leading byte that isn't '{' is a
// StatusError.
func ReadOne(r io.Reader) Result {
	var one [1]byte

	for {
		n, err := r.Read(one[:])
		if n == 0 {
			if err != nil {
				return Result{Status: StatusClosed}
			}
			continue
		}

		b := one[0]
		if b == '\n' || b == '\r' {
			continue
		}
		if b != '{' {
			return Result{Status: StatusError}
		}
		break
	}

	buf := make([]byte, 0, 256)
	buf = append(buf, '{')
	nest := 1

	for nest > 0 {
		n, err := r.Read(one[:])
		if n == 0 {
			// A byte was already committed to this frame; a short or
			// failed read now is a partial-frame error, not a clean
			// close.
			return Result{Status: StatusError}
		}

		buf = append(buf, one[0])
		switch one[0] {
		case '{':
			nest++
		case '}':
			nest--
		}

		if err != nil && nest > 0 {
			return Result{Status: StatusError}
		}
	}

	msg, err := message.Decode(buf)
	if err != nil {
		return Result{
			Message: message.SoftwareError(message.ReasonDecodeFailed),
			Enqueue: true,
			Status:  StatusSuccess,
		}
	}

	if msg.IsKeepAlive() {
		return Result{Message: msg, Status: StatusSuccess}
	}

	return Result{Message: msg, Enqueue: true, Status: StatusSuccess}
}

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

package message

import "encoding/json"

// Type identifies the kind of a decoded or synthetic Message.
type Type string

const (
	// TypeKeepAlive marks a wire message whose only effect is to refresh
	// a connection's liveness timestamp. KeepAlive messages never reach
	// the ingress queue.
	TypeKeepAlive Type = "KEEP_ALIVE"

	// TypeSoftwareError marks a Message synthesized by the server itself
	// (never received on the wire) to report a connection-level event to
	// the consumer: a decode failure, a remote close, or a liveness
	// timeout.
	TypeSoftwareError Type = "SOFTWARE_ERROR"
)

// Reason strings for synthetic software_error messages, per the
// connection-level events the server can report.
const (
	ReasonDecodeFailed   = "Could not decode message"
	ReasonConnectionDone = "Connection closed"
	ReasonTimeout        = "Connection timeout"
)

// Message is the decoded payload of one frame, or a synthetic error
// describing a connection-level event.
//
// Seq and Raw are carried through for application convenience; neither
// is interpreted by the ingress pipeline.
type Message struct {
	Type   Type            `json:"type"`
	Seq    int64           `json:"seq,omitempty"`
	Reason string          `json:"reason,omitempty"`
	Raw    json.RawMessage `json:"-"`
}

// IsKeepAlive reports whether the Message is a KEEP_ALIVE pulse.
func (m Message) IsKeepAlive() bool {
	return m.Type == TypeKeepAlive
}

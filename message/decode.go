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

// Decode turns one brace-balanced frame into a Message. It is a pure
// function: no I/O, no connection state.
//
// A frame that isn't valid JSON is reported as an error; the caller is
// expected to turn that into a synthetic SoftwareError(ReasonDecodeFailed).
// A frame with no "type" field decodes successfully with an empty Type.
func Decode(frame []byte) (Message, error) {
	var m Message

	if err := json.Unmarshal(frame, &m); err != nil {
		return Message{}, err
	}

	m.Raw = append(json.RawMessage(nil), frame...)

	return m, nil
}

// SoftwareError builds a synthetic error Message carrying the given
// reason. It never originates on the wire.
func SoftwareError(reason string) Message {
	return Message{
		Type:   TypeSoftwareError,
		Reason: reason,
	}
}

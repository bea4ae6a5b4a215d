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

package frame_test

import (
	"bytes"
	"io"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/msgsock/frame"
	"github.com/sabouaram/msgsock/message"
)

func TestFrame(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "frame Suite")
}

var _ = Describe("ReadOne", func() {
	It("decodes a single flat object", func() {
		r := bytes.NewReader([]byte(`{"type":"PING"}`))
		res := frame.ReadOne(r)

		Expect(res.Status).To(Equal(frame.StatusSuccess))
		Expect(res.Enqueue).To(BeTrue())
		Expect(res.Message.Type).To(Equal(message.Type("PING")))
	})

	It("balances nested braces into one message", func() {
		r := bytes.NewReader([]byte(`{"type":"PING","nested":{"a":1}}`))
		res := frame.ReadOne(r)

		Expect(res.Status).To(Equal(frame.StatusSuccess))
		Expect(res.Enqueue).To(BeTrue())
	})

	It("skips leading CR/LF before the opening brace", func() {
		r := bytes.NewReader([]byte("\n\r\n{\"type\":\"PING\"}"))
		res := frame.ReadOne(r)

		Expect(res.Status).To(Equal(frame.StatusSuccess))
		Expect(res.Enqueue).To(BeTrue())
	})

	It("discards a KEEP_ALIVE frame without enqueueing", func() {
		r := bytes.NewReader([]byte(`{"type":"KEEP_ALIVE"}`))
		res := frame.ReadOne(r)

		Expect(res.Status).To(Equal(frame.StatusSuccess))
		Expect(res.Enqueue).To(BeFalse())
		Expect(res.Message.IsKeepAlive()).To(BeTrue())
	})

	It("reports a decode error but still completes the frame", func() {
		r := bytes.NewReader([]byte(`{not json}`))
		res := frame.ReadOne(r)

		Expect(res.Status).To(Equal(frame.StatusSuccess))
		Expect(res.Enqueue).To(BeTrue())
		Expect(res.Message.Type).To(Equal(message.TypeSoftwareError))
		Expect(res.Message.Reason).To(Equal(message.ReasonDecodeFailed))
	})

	It("treats a bad leading byte as a frame error", func() {
		r := bytes.NewReader([]byte(`x{"type":"PING"}`))
		res := frame.ReadOne(r)

		Expect(res.Status).To(Equal(frame.StatusError))
	})

	It("does not honor string quoting: a brace inside a string closes the frame", func() {
		r := bytes.NewReader([]byte(`{"a":"}"}`))

		res := frame.ReadOne(r)
		Expect(res.Status).To(Equal(frame.StatusSuccess))
		Expect(res.Message.Reason).To(Equal(message.ReasonDecodeFailed))

		res = frame.ReadOne(r)
		Expect(res.Status).To(Equal(frame.StatusError))
	})

	It("reports StatusClosed when nothing arrives before EOF", func() {
		r := bytes.NewReader(nil)
		res := frame.ReadOne(r)

		Expect(res.Status).To(Equal(frame.StatusClosed))
	})

	It("reports StatusError when the peer disconnects mid-frame", func() {
		pr, pw := io.Pipe()
		go func() {
			_, _ = pw.Write([]byte(`{"type":"PING"`))
			_ = pw.Close()
		}()

		res := frame.ReadOne(pr)
		Expect(res.Status).To(Equal(frame.StatusError))
	})
})

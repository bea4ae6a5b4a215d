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

package message_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/msgsock/message"
)

func TestMessage(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "message Suite")
}

var _ = Describe("Decode", func() {
	It("decodes a PING-shaped object", func() {
		m, err := message.Decode([]byte(`{"type":"PING","seq":1}`))
		Expect(err).ToNot(HaveOccurred())
		Expect(m.Type).To(BeEquivalentTo("PING"))
		Expect(m.Seq).To(Equal(int64(1)))
		Expect(m.IsKeepAlive()).To(BeFalse())
	})

	It("recognizes KEEP_ALIVE", func() {
		m, err := message.Decode([]byte(`{"type":"KEEP_ALIVE"}`))
		Expect(err).ToNot(HaveOccurred())
		Expect(m.IsKeepAlive()).To(BeTrue())
	})

	It("handles nested objects", func() {
		m, err := message.Decode([]byte(`{"a":{"b":1}}`))
		Expect(err).ToNot(HaveOccurred())
		Expect(m.Type).To(BeEmpty())
	})

	It("fails on malformed JSON", func() {
		_, err := message.Decode([]byte(`{not json}`))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("SoftwareError", func() {
	It("builds a synthetic error message", func() {
		m := message.SoftwareError(message.ReasonConnectionDone)
		Expect(m.Type).To(Equal(message.TypeSoftwareError))
		Expect(m.Reason).To(Equal("Connection closed"))
	})
})

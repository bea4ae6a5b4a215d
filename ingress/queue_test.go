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

package ingress_test

import (
	"sync"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/msgsock/ingress"
	"github.com/sabouaram/msgsock/message"
)

func TestIngress(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "ingress Suite")
}

var _ = Describe("Queue", func() {
	It("pops empty when nothing pushed", func() {
		q := ingress.New(4)
		_, ok := q.Pop()
		Expect(ok).To(BeFalse())
	})

	It("is FIFO for successful pushes", func() {
		q := ingress.New(4)

		Expect(q.Push(ingress.Item{Message: message.SoftwareError("a")})).To(BeTrue())
		Expect(q.Push(ingress.Item{Message: message.SoftwareError("b")})).To(BeTrue())

		first, ok := q.Pop()
		Expect(ok).To(BeTrue())
		Expect(first.Message.Reason).To(Equal("a"))

		second, ok := q.Pop()
		Expect(ok).To(BeTrue())
		Expect(second.Message.Reason).To(Equal("b"))

		_, ok = q.Pop()
		Expect(ok).To(BeFalse())
	})

	It("drops instead of blocking once full", func() {
		q := ingress.New(1)
		Expect(q.Push(ingress.Item{})).To(BeTrue())
		Expect(q.Push(ingress.Item{})).To(BeFalse())
	})

	It("rejects pushes after DrainAndFree", func() {
		q := ingress.New(4)
		Expect(q.Push(ingress.Item{})).To(BeTrue())

		q.DrainAndFree()

		Expect(q.Len()).To(Equal(0))
		Expect(q.Push(ingress.Item{})).To(BeFalse())
	})

	It("leaves the queue empty after being drained with no producers", func() {
		q := ingress.New(4)
		_, ok := q.Pop()
		Expect(ok).To(BeFalse())
		_, ok = q.Pop()
		Expect(ok).To(BeFalse())
	})

	It("is safe for concurrent producers", func() {
		q := ingress.New(256)

		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				q.Push(ingress.Item{})
			}()
		}
		wg.Wait()

		Expect(q.Len()).To(Equal(16))
	})
})

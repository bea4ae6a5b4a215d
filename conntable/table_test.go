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

package conntable_test

import (
	"net"
	"sync"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/msgsock/conntable"
)

type Handle = conntable.Handle

func TestConnTable(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "conntable Suite")
}

type fakeConn struct {
	net.Conn
	addr net.Addr
}

func (f fakeConn) RemoteAddr() net.Addr { return f.addr }

func newFakeConn(addr string) net.Conn {
	a, _ := net.ResolveTCPAddr("tcp", addr)
	return fakeConn{addr: a}
}

var _ = Describe("Table", func() {
	It("inserts and looks up a connection exactly once", func() {
		tbl := conntable.New()
		c := conntable.NewConnection(1, newFakeConn("127.0.0.1:9001"))

		Expect(tbl.Insert(1, c)).To(BeTrue())
		Expect(tbl.Len()).To(Equal(1))

		got, ok := tbl.Lookup(1)
		Expect(ok).To(BeTrue())
		Expect(got).To(BeIdenticalTo(c))
	})

	It("rejects a duplicate handle", func() {
		tbl := conntable.New()
		c1 := conntable.NewConnection(1, newFakeConn("127.0.0.1:9001"))
		c2 := conntable.NewConnection(1, newFakeConn("127.0.0.1:9002"))

		Expect(tbl.Insert(1, c1)).To(BeTrue())
		Expect(tbl.Insert(1, c2)).To(BeFalse())
		Expect(tbl.Len()).To(Equal(1))
	})

	It("removes a connection so later lookups miss", func() {
		tbl := conntable.New()
		c := conntable.NewConnection(1, newFakeConn("127.0.0.1:9001"))
		Expect(tbl.Insert(1, c)).To(BeTrue())

		removed, ok := tbl.Remove(1)
		Expect(ok).To(BeTrue())
		Expect(removed).To(BeIdenticalTo(c))

		_, ok = tbl.Lookup(1)
		Expect(ok).To(BeFalse())
	})

	It("reports last_keep_alive as monotonically non-decreasing", func() {
		c := conntable.NewConnection(1, newFakeConn("127.0.0.1:9001"))
		first := c.LastKeepAlive()

		time.Sleep(time.Millisecond)
		c.TouchKeepAlive()
		second := c.LastKeepAlive()

		Expect(second.After(first) || second.Equal(first)).To(BeTrue())
	})

	It("tolerates concurrent removal during ForEach", func() {
		tbl := conntable.New()
		for i := Handle(1); i <= 50; i++ {
			_ = tbl.Insert(i, conntable.NewConnection(i, newFakeConn("127.0.0.1:9001")))
		}

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := Handle(1); i <= 50; i++ {
				tbl.Remove(i)
			}
		}()

		Expect(func() {
			tbl.ForEach(func(c *conntable.Connection) bool { return true })
		}).ToNot(Panic())

		wg.Wait()
		Expect(tbl.Len()).To(Equal(0))
	})

	It("skips a sweep round on contention instead of blocking", func() {
		tbl := conntable.New()
		_ = tbl.Insert(1, conntable.NewConnection(1, newFakeConn("127.0.0.1:9001")))

		done := make(chan struct{})
		go func() {
			tbl.ForEach(func(c *conntable.Connection) bool {
				<-done
				return true
			})
		}()

		time.Sleep(10 * time.Millisecond)

		ran := tbl.TryForEach(func(c *conntable.Connection) bool { return true })
		Expect(ran).To(BeFalse())

		close(done)
	})

	It("runs Destroy exactly once under races", func() {
		c := conntable.NewConnection(1, newFakeConn("127.0.0.1:9001"))

		var calls int
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c.Destroy(func() { calls++ })
			}()
		}
		wg.Wait()

		Expect(calls).To(Equal(1))
		Expect(c.State()).To(Equal(conntable.StateClosed))
	})
})

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

package config

import "github.com/nabbar/golib/duration"

// DefaultQueueCapacity matches ingress.DefaultCapacity; kept as its own
// constant so config stays independent of the ingress package.
const DefaultQueueCapacity = 4096

// DefaultConfig returns a Config with a 30s keep-alive interval checked
// every 4th tick (a sweep every 2 minutes), tolerating up to 2 minutes
// of silence.
func DefaultConfig(listenAddress string) *Config {
	return &Config{
		ListenAddress:        listenAddress,
		QueueCapacity:        DefaultQueueCapacity,
		KeepAliveInterval:    duration.Seconds(30),
		KeepAliveCheckPeriod: 4,
		KeepAliveProd:        duration.Seconds(120),
		ConnIdleTimeout:      0,
	}
}

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

import (
	"time"

	"github.com/nabbar/golib/certificates"
	"github.com/nabbar/golib/duration"
)

// Config describes one server instance.
type Config struct {
	// ListenAddress is the address passed to net.Listen, e.g. ":9000"
	// or "127.0.0.1:9000".
	ListenAddress string `mapstructure:"listenAddress" json:"listenAddress" yaml:"listenAddress" toml:"listenAddress" validate:"required,hostname_port|tcp_addr"`

	// QueueCapacity bounds the ingress queue. A Push beyond capacity is
	// dropped rather than blocking the connection that produced it.
	QueueCapacity int `mapstructure:"queueCapacity" json:"queueCapacity" yaml:"queueCapacity" toml:"queueCapacity" validate:"gt=0"`

	// KeepAliveInterval is the base tick of the liveness sweep; the
	// sweeper actually runs every KeepAliveInterval * KeepAliveCheckPeriod.
	KeepAliveInterval duration.Duration `mapstructure:"keepAliveInterval" json:"keepAliveInterval" yaml:"keepAliveInterval" toml:"keepAliveInterval" validate:"required"`

	// KeepAliveCheckPeriod multiplies KeepAliveInterval to produce the
	// sweeper's actual tick period.
	KeepAliveCheckPeriod int64 `mapstructure:"keepAliveCheckPeriod" json:"keepAliveCheckPeriod" yaml:"keepAliveCheckPeriod" toml:"keepAliveCheckPeriod" validate:"gt=0"`

	// KeepAliveProd is the maximum silence tolerated from a connection
	// before the sweeper reports it as timed out.
	KeepAliveProd duration.Duration `mapstructure:"keepAliveProd" json:"keepAliveProd" yaml:"keepAliveProd" toml:"keepAliveProd" validate:"required"`

	// ConnIdleTimeout bounds how long reading one frame (including any
	// leading CR/LF) from an accepted connection may take: the read
	// deadline is set to now+ConnIdleTimeout before each frame, not
	// refreshed per byte, and independent of the keep-alive protocol.
	// Zero disables it.
	ConnIdleTimeout duration.Duration `mapstructure:"connIdleTimeout" json:"connIdleTimeout" yaml:"connIdleTimeout" toml:"connIdleTimeout"`

	// TLS, when non-nil, wraps every accepted connection in a TLS
	// handshake before framing begins.
	TLS *certificates.Config `mapstructure:"tls" json:"tls,omitempty" yaml:"tls,omitempty" toml:"tls,omitempty"`
}

// SweepPeriod returns the effective interval between liveness sweeps.
func (c Config) SweepPeriod() duration.Duration {
	return duration.ParseDuration(c.KeepAliveInterval.Time() * time.Duration(c.KeepAliveCheckPeriod))
}

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

// Package frame extracts brace-balanced JSON objects from a byte stream
// and turns each into a decoded message.Message.
//
// A frame is the maximal substring starting at a '{' and ending at the
// '}' that balances its nesting, counting every literal '{' as +1 and
// every literal '}' as -1. String quoting is not honored: a frame
// whose payload happens to contain an unescaped brace inside a string
// will mis-parse. Producers are expected to send well-formed objects.
//
// ReadOne blocks on its reader one byte at a time, which doubles as
// the "is the peer still there" check a non-blocking poll-based reader
// would need a separate peek for: the first Read either returns a
// byte (classify and continue framing) or an error (the peer is gone).
package frame

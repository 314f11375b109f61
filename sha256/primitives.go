// Copyright (c) 2026 sha256engine contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:opensilicon/sha256engine/sha256/primitives.go

// Package sha256 implements a streaming, FIPS 180-4 conformant SHA-256
// message digest engine structured as the three cooperating subsystems of a
// pipelined hardware accelerator: constants and bit-level primitives (this
// file), a message controller that owns padding and word-fetch (controller.go),
// and a compression engine that runs the 64-round schedule (engine.go).
package sha256

// Constants and primitives. Pure, stateless functions over 32-bit words.
// There is deliberately no hand-rolled AVX/SIMD path here -- this engine
// targets bit-exact conformance and a legible mapping back to the
// pipelined hardware design it mirrors, not wall-clock speed.

const (
	blockBits  = 512
	blockBytes = 64
	blockInts  = 16

	digestBytes = 32
	digestInts  = 8

	scheduleInts = 64
)

// H0 is the FIPS 180-4 initial hash value: the first 32 bits of the
// fractional parts of the square roots of the first 8 primes.
var h0 = [digestInts]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// k holds the 64 round constants: the first 32 bits of the fractional parts
// of the cube roots of the first 64 primes.
var k = [scheduleInts]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// rotr rotates x right by n bits within a 32-bit word.
func rotr(x uint32, n uint) uint32 {
	return (x >> n) | (x << (32 - n))
}

// ch implements Ch(x,y,z) = (x & y) ^ (~x & z).
func ch(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

// maj implements Maj(x,y,z) = (x & y) ^ (x & z) ^ (y & z).
func maj(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}

// bigSigma0 implements Sigma0(x) = ROTR2(x) ^ ROTR13(x) ^ ROTR22(x).
func bigSigma0(x uint32) uint32 {
	return rotr(x, 2) ^ rotr(x, 13) ^ rotr(x, 22)
}

// bigSigma1 implements Sigma1(x) = ROTR6(x) ^ ROTR11(x) ^ ROTR25(x).
func bigSigma1(x uint32) uint32 {
	return rotr(x, 6) ^ rotr(x, 11) ^ rotr(x, 25)
}

// smallSigma0 implements sigma0(x) = ROTR7(x) ^ ROTR18(x) ^ SHR3(x).
func smallSigma0(x uint32) uint32 {
	return rotr(x, 7) ^ rotr(x, 18) ^ (x >> 3)
}

// smallSigma1 implements sigma1(x) = ROTR17(x) ^ ROTR19(x) ^ SHR10(x).
func smallSigma1(x uint32) uint32 {
	return rotr(x, 17) ^ rotr(x, 19) ^ (x >> 10)
}

// Package bitmask 提供替换掩码的位集合实现
//
// 掩码按"每个 calldata 字节一位"建模，内部以大端位序紧凑存储，
// 通过固定宽度区间标记直接按字节 OR 写入，不经过中间位字符串。
//
// 两种输出形式：
// - Expanded()：每位展开为一个 0xff/0x00 字节，与 calldata 等长，链上撮合方使用
// - Packed()：大端位打包，每 8 位一字节，末尾不足 8 位右侧补零
package bitmask

import "fmt"

// Bitmask 固定长度位集合
type Bitmask struct {
	n    int
	bits []byte
}

// New 创建 n 位全零掩码
func New(n int) *Bitmask {
	if n < 0 {
		n = 0
	}
	return &Bitmask{
		n:    n,
		bits: make([]byte, (n+7)/8),
	}
}

// FromExpanded 从展开形式重建掩码（非零字节视为置位）
func FromExpanded(expanded []byte) *Bitmask {
	m := New(len(expanded))
	for i, b := range expanded {
		if b != 0 {
			m.Set(i)
		}
	}
	return m
}

// Len 掩码位数
func (m *Bitmask) Len() int {
	return m.n
}

// Set 置位第 i 位
func (m *Bitmask) Set(i int) {
	if i < 0 || i >= m.n {
		panic(fmt.Sprintf("bitmask: index %d out of range [0,%d)", i, m.n))
	}
	m.bits[i/8] |= 0x80 >> uint(i%8)
}

// Get 读取第 i 位
func (m *Bitmask) Get(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}
	return m.bits[i/8]&(0x80>>uint(i%8)) != 0
}

// MarkRange 置位半开区间 [from, to)
//
// 区间对应一个固定宽度 ABI 槽位的字节跨度；
// 对齐的内部字节整体写 0xff，边界位逐位 OR
func (m *Bitmask) MarkRange(from, to int) {
	if from < 0 || to > m.n || from > to {
		panic(fmt.Sprintf("bitmask: range [%d,%d) out of range [0,%d)", from, to, m.n))
	}
	for from < to && from%8 != 0 {
		m.Set(from)
		from++
	}
	for from+8 <= to {
		m.bits[from/8] = 0xff
		from += 8
	}
	for from < to {
		m.Set(from)
		from++
	}
}

// Expanded 展开形式：每位一个字节，置位为 0xff，未置位为 0x00
func (m *Bitmask) Expanded() []byte {
	out := make([]byte, m.n)
	for i := 0; i < m.n; i++ {
		if m.Get(i) {
			out[i] = 0xff
		}
	}
	return out
}

// Packed 紧凑形式：大端位打包，末尾不足 8 位的字节右侧补零
func (m *Bitmask) Packed() []byte {
	out := make([]byte, len(m.bits))
	copy(out, m.bits)
	return out
}

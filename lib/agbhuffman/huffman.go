// Copyright 2024 The awsmimg Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// ----------------

// Package agbhuffman implements the canonical Huffman codec matching the
// AGB BIOS decompression ABI: a 5-byte header, a flat branch-offset tree
// table, and a 32-bit-little-endian, LSB-first bitstream.
//
// Reader is a streaming decompressing io.Reader; Writer is a streaming
// compressing io.Writer that commits nothing until Flush.
package agbhuffman

import "container/heap"

const headerSize = 5

// node is either a leaf (carrying a raw symbol) or a branch (carrying
// exactly two children). The tree is built bottom-up from a frequency
// histogram and walked top-down during compression, both to assign codes
// and to serialize the flat tree table. Decompression walks that serialized
// table instead.
type node struct {
	leaf        bool
	symbol      int
	left, right *node
}

// buildTree runs the standard Huffman construction: repeatedly combine the
// two lowest-frequency entries until one remains. Ties are broken by
// insertion order so that identical input always produces the identical
// tree.
func buildTree(freq []int) *node {
	pq := make(nodeHeap, 0, len(freq))
	for sym, f := range freq {
		if f == 0 {
			continue
		}
		pq = append(pq, &heapItem{freq: f, order: sym, n: &node{leaf: true, symbol: sym}})
	}
	if len(pq) == 0 {
		return &node{left: &node{leaf: true, symbol: 0}, right: &node{leaf: true, symbol: 0}}
	}
	if len(pq) == 1 {
		sym := pq[0].n.symbol
		return &node{left: &node{leaf: true, symbol: sym}, right: &node{leaf: true, symbol: sym}}
	}

	heap.Init(&pq)
	order := len(freq)
	for pq.Len() > 1 {
		a := heap.Pop(&pq).(*heapItem)
		b := heap.Pop(&pq).(*heapItem)
		combined := &node{left: a.n, right: b.n}
		heap.Push(&pq, &heapItem{freq: a.freq + b.freq, order: order, n: combined})
		order++
	}
	return pq[0].n
}

// forceRootChildrenToBranches enforces the format's hardcoded rule that
// pair 0's own two entries are never interpreted as leaves (nothing points
// at the root to supply leaf flags for it). A leaf discovered directly
// under the root is wrapped in a synthetic branch whose two children are
// both that same leaf, costing one redundant bit on that symbol's code but
// keeping the wire format representable.
func forceRootChildrenToBranches(root *node) *node {
	wrap := func(n *node) *node {
		if !n.leaf {
			return n
		}
		return &node{left: &node{leaf: true, symbol: n.symbol}, right: &node{leaf: true, symbol: n.symbol}}
	}
	root.left = wrap(root.left)
	root.right = wrap(root.right)
	return root
}

// codeTable walks the finalized (post-wrap) tree and returns each symbol's
// root-to-leaf path as a sequence of bits, first decision first.
func codeTable(root *node) map[int][]bool {
	table := make(map[int][]bool)
	var walk func(n *node, path []bool)
	walk = func(n *node, path []bool) {
		if n.leaf {
			cp := make([]bool, len(path))
			copy(cp, path)
			table[n.symbol] = cp
			return
		}
		walk(n.left, append(path, false))
		walk(n.right, append(path, true))
	}
	walk(root, nil)
	return table
}

// heapItem/nodeHeap implement container/heap's Interface, ordering by
// frequency and breaking ties by insertion order (lower order = inserted
// earlier = popped first among equal frequencies).
type heapItem struct {
	freq  int
	order int
	n     *node
}

type nodeHeap []*heapItem

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].order < h[j].order
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)   { *h = append(*h, x.(*heapItem)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

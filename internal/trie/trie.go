package trie

import "unicode/utf8"

/*
Arena-based Trie Implementation

Nodes live in a single slice and refer to their children by index rather
than by pointer. Keys are inserted rune by rune, so a lookup can walk the
input text once and report every stored key that is a prefix of it.

The pattern tables build one trie per token category at package
initialisation and never insert into it again, which makes concurrent
lookups safe without locking.
*/

// NodeIndex represents the index of a trie node.
type NodeIndex int

// Arena is a memory pool that stores all trie nodes.
type Arena struct {
	// nodes is a slice that stores all trie nodes.
	nodes []arenaNode
}

// arenaNode is the internal representation of a trie node stored in the arena.
type arenaNode struct {
	// children stores child nodes. key is the next rune, value is the index of the child node.
	children map[rune]NodeIndex
	// value is the payload stored for the key ending at this node.
	value int
	// isEnd indicates whether this node is the end of a key.
	isEnd bool
}

// NewArena creates a new arena.
func NewArena() *Arena {
	arena := &Arena{
		nodes: make([]arenaNode, 0, 256),
	}
	// root node (index 0)
	arena.nodes = append(arena.nodes, arenaNode{
		children: make(map[rune]NodeIndex),
	})
	return arena
}

// newNode adds a new node to the arena and returns its index.
func (a *Arena) newNode() NodeIndex {
	idx := NodeIndex(len(a.nodes))
	a.nodes = append(a.nodes, arenaNode{
		children: make(map[rune]NodeIndex),
	})
	return idx
}

// Insert stores value under key. The first value stored for a key is kept;
// later inserts of the same key report false and change nothing.
func (a *Arena) Insert(key string, value int) bool {
	current := NodeIndex(0) // root node

	for _, r := range key {
		node := &a.nodes[current]
		childIdx, exists := node.children[r]

		if !exists {
			childIdx = a.newNode()
			// the append in newNode may have moved the slice
			a.nodes[current].children[r] = childIdx
		}

		current = childIdx
	}

	if a.nodes[current].isEnd {
		return false
	}
	a.nodes[current].isEnd = true
	a.nodes[current].value = value
	return true
}

// Prefixes walks s from its start and calls fn for every stored key that is
// a prefix of s, shortest first. n is the byte length of the key.
// Returning false from fn stops the walk.
func (a *Arena) Prefixes(s string, fn func(n int, value int) bool) {
	current := NodeIndex(0)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		next, ok := a.nodes[current].children[r]
		if !ok {
			return
		}
		current = next
		i += size
		if a.nodes[current].isEnd && !fn(i, a.nodes[current].value) {
			return
		}
	}
}

// Trie is a thin wrapper around Arena.
type Trie struct {
	arena *Arena
}

// New returns an initialized Trie.
func New() *Trie {
	return &Trie{
		arena: NewArena(),
	}
}

// Insert stores value under key unless key is already present.
func (t *Trie) Insert(key string, value int) bool {
	if key == "" {
		return false
	}
	return t.arena.Insert(key, value)
}

// Prefixes reports every stored key that is a prefix of s.
func (t *Trie) Prefixes(s string, fn func(n int, value int) bool) {
	t.arena.Prefixes(s, fn)
}

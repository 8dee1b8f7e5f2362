package trie

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Trie stores lowercased words and answers exact membership queries.
type Trie struct {
	root       *Node[rune]
	mu         sync.RWMutex
	normalised bool
	words      int
}

// New creates a new empty trie. By default normalisation is on.
func New() *Trie {
	t := new(Trie)
	t.root = newRoot[rune]()
	t.WithNormalisation()
	return t
}

// WithNormalisation sets the Trie to bring words into Unicode NFC before
// storing or looking them up, so "é" written as one or as two code points
// is the same character. It has no effect once a word has been inserted.
func (t *Trie) WithNormalisation() *Trie {
	t.setNormalised(true)
	return t
}

// WithoutNormalisation sets the Trie to only lowercase words. Characters are
// then compared code point by code point. It has no effect once a word has
// been inserted.
func (t *Trie) WithoutNormalisation() *Trie {
	t.setNormalised(false)
	return t
}

// setNormalised changes the setting only while the trie is empty, since
// stored paths were built with the setting in force at insertion.
func (t *Trie) setNormalised(normalised bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.root.Len() > 0 {
		return
	}
	t.normalised = normalised
}

// Root returns the root node of the trie. Nodes can be inspected but not
// modified from outside the package.
func (t *Trie) Root() *Node[rune] { return t.root }

// Insert inserts words into the Trie. Empty words are ignored.
func (t *Trie) Insert(words ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, word := range words {
		t.insertInternal(word)
	}
}

// insertInternal performs the actual insertion without locking.
func (t *Trie) insertInternal(word string) {
	if len(word) == 0 {
		return
	}
	currentNode := t.root
	for _, character := range t.normalise(word) {
		child, ok := currentNode.Child(character)
		if !ok {
			currentNode.add(character)
			child, _ = currentNode.Child(character)
		}
		currentNode = child
	}
	if !currentNode.terminating {
		currentNode.terminating = true
		t.words++
	}
}

// Contains reports whether word was inserted. The empty word is never
// contained, and neither is a prefix of a stored word unless it was inserted
// itself.
func (t *Trie) Contains(word string) bool {
	if len(word) == 0 {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	currentNode := t.root
	for _, character := range t.normalise(word) {
		next, ok := currentNode.Child(character)
		if !ok {
			return false
		}
		currentNode = next
	}
	return currentNode.terminating
}

// Len returns the number of distinct words stored.
func (t *Trie) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.words
}

// normalise lowercases word and, if enabled, composes it to NFC.
// A Caser keeps state, so a fresh transformer is built on every call.
func (t *Trie) normalise(word string) string {
	var transformer transform.Transformer = cases.Lower(language.Und)
	if t.normalised {
		transformer = transform.Chain(transformer, norm.NFC)
	}
	// Neither transformer reports errors on valid or invalid UTF-8.
	normal, _, _ := transform.String(transformer, word)
	return normal
}

/*
Package trie provides a prefix tree for storing words and checking whether a
given word was stored. Words are lowercased on the way in and on lookup, so
membership is case-insensitive.
*/
package trie

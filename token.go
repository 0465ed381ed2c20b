package main

import (
	"slices"
	"unicode"
)

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// identifiers returns the identifiers in line, in order of appearance.
// Words starting with a digit are numbers, not identifiers.
func identifiers(line []rune) []string {
	var idents []string
	for i := 0; i < len(line); {
		if !isIdentRune(line[i]) {
			i++
			continue
		}
		j := i
		for j < len(line) && isIdentRune(line[j]) {
			j++
		}
		if !unicode.IsDigit(line[i]) {
			idents = append(idents, string(line[i:j]))
		}
		i = j
	}
	return idents
}

// lastToken returns the identifier ending at column i of line, or nil.
func lastToken(line []rune, i int) []rune {
	if i > len(line) {
		i = len(line)
	}
	j := i
	for j > 0 && isIdentRune(line[j-1]) {
		j--
	}
	if j == i || unicode.IsDigit(line[j]) {
		return nil
	}
	return line[j:i]
}

// a tree intended for the token
type node struct {
	value    rune
	parent   *node
	children []*node
	end      bool // a token ends here
}

func buildTokenTree(n *node, buf [][]rune) {
	for _, line := range buf {
		for _, s := range identifiers(line) {
			n.set(s)
		}
	}
}

func (n *node) set(s string) {
	nn := n
	for _, c := range s {
		var ok bool
		for _, child := range nn.children {
			if child.value == c {
				nn = child
				ok = true
				break
			}
		}
		if !ok {
			newNode := &node{parent: nn, value: c}
			nn.children = append(nn.children, newNode)
			nn = newNode
		}
	}
	nn.end = true
}

// get returns the tokens starting with s. Lower case letters in s
// also match upper case ones.
func (n *node) get(s string) []string {
	if s == "" {
		return nil
	}

	var nodes = []*node{n}
	for _, c := range s {
		var match []*node
		for _, node := range nodes {
			for _, child := range node.children {
				if child.value == c || unicode.ToLower(child.value) == c {
					match = append(match, child)
				}
			}
		}
		if len(match) == 0 {
			return nil
		}
		nodes = match
	}

	var tokens []string
	for _, node := range nodes {
		for _, w := range node.words() {
			tokens = append(tokens, string(w.path()))
		}
	}
	slices.Sort(tokens)
	return tokens
}

// words returns the nodes under n, n included, where a token ends.
func (n *node) words() []*node {
	var ws []*node
	if n.end {
		ws = append(ws, n)
	}
	for _, child := range n.children {
		ws = append(ws, child.words()...)
	}
	return ws
}

func (n *node) path() []rune {
	var rs []rune
	for p := n; p != nil && p.parent != nil; p = p.parent {
		rs = append(rs, p.value)
	}
	slices.Reverse(rs)
	return rs
}

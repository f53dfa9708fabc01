package parser

import "github.com/aledsdavies/blockexpr/pkgs/ast"

// onGroupOpen fires on "(" plus any immediately following whitespace: the
// whitespace width becomes the Group's LeftOffset once the group closes.
func onGroupOpen() {
	leftOffset := current.scanner.MatchLen() - 1
	current.groupLeftOffsetStack = append(current.groupLeftOffsetStack, leftOffset)
	current.pushAST()
	current.pushLastOffset()
	current.scanner.BeginGroup(groupParensed)
}

func popGroupLeftOffset() int {
	n := len(current.groupLeftOffsetStack)
	v := current.groupLeftOffsetStack[n-1]
	current.groupLeftOffsetStack = current.groupLeftOffsetStack[:n-1]
	return v
}

func onGroupClose() {
	leftOffset := popGroupLeftOffset()
	rightOffset := current.useLastOffset()
	inner := current.result
	current.popAST()
	current.popLastOffset()
	current.app(ast.Group{LeftOffset: leftOffset, Inner: inner, RightOffset: rightOffset})
	current.scanner.EndGroup()
}

// onGroupEOF fires when EOF is reached with an open "(" never closed. If
// nothing was ever parsed inside, there is no right offset to pair the
// left offset with, so it's folded into the enclosing context's pending
// offset instead of being attached to the (empty) GroupUnclosed node.
func onGroupEOF() {
	leftOffset := popGroupLeftOffset()
	inner := current.result
	var node ast.Node
	if inner != nil {
		lo := leftOffset
		node = ast.GroupUnclosed{LeftOffset: &lo, Inner: inner}
	} else {
		node = ast.GroupUnclosed{}
	}
	current.popAST()
	current.popLastOffset()
	if inner == nil {
		current.lastOffset += leftOffset
	}
	current.app(node)
	current.scanner.EndGroup()
	current.scanner.Rewind()
}

func onGroupUnmatchedClose() {
	current.app(ast.GroupUnmatchedClose{})
}

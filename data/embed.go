// Package data provides the card pairs built into the binary.
package data

import _ "embed"

// cardPairs is the default pair list used when no file is given.
//
//go:embed cardPairs.txt
var cardPairs []byte

// CardPairs returns the raw contents of the built-in pair file.
func CardPairs() []byte {
	return cardPairs
}

package main

import (
	"go.brendoncarroll.net/star"

	"wordset.io/wordset/src/wordcmd"
)

func main() {
	star.Main(wordcmd.Root())
}

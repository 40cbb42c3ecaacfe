package main

import (
	"math/rand"
	"time"

	"github.com/battlesnakeio/termsnake/cmd/termsnake/commands"
)

func main() {
	rand.Seed(time.Now().UnixNano())
	commands.Execute()
}

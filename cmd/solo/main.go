package main

import "github.com/battlesnakeio/solo/cmd/solo/commands"

func main() {
	commands.Execute()
}

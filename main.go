package main

import "github.com/KingGhost27/debtdown/cmd"

func main() {
	cmd.Execute()
}

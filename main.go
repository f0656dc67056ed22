package main

import "github.com/chriserin/puml/cmd"

func main() {
	cmd.Execute()
}

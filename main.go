package main

import "github.com/gollections/gollections/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/thenoetrevino/tramo/cmd"

func main() {
	cmd.Execute()
}

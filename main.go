package main

import "github.com/jfmyers9/undertow/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/they4kman/infinisweep/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/notargets/godec/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/ftl/sliderdrive/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/tinyshell/simplesh/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/filedex/filedex/cmd"

func main() {
	cmd.Execute()
}

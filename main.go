package main

import "github.com/brogergvhs/hqnews/cmd"

func main() {
	cmd.Execute()
}

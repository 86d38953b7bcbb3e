package main

import "github.com/golfscript-go/golfscript/cmd/golfscript/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/jsphweid/riffcode/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/angelospk/subspedia-go/cmd/cli/cmd"

func main() {
	cmd.Execute()
}

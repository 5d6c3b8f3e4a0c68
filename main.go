package main

import "github.com/voxtools/cursor-export/cmd"

func main() {
	cmd.Execute()
}

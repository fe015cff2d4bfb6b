package main

import "github.com/OpenTraceLab/OpenTraceFPW/cmd/fpw/cmd"

func main() {
	cmd.Execute()
}

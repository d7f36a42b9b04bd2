package main

import "github.com/svgmotion/svgmotion/internal/cli"

func main() {
	cli.Execute()
}

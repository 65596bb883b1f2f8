package main

import "github.com/andrescamacho/portlogistics-go/internal/adapters/cli"

func main() {
	cli.Execute()
}

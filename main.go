package main

import "oralog/internal/cli"

func main() {
	cli.Execute()
}

package main

import "go.flakedb/internal/cli"

func main() {
	cli.Execute()
}

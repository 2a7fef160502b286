package main

import "github.com/docsight/docsight/internal/cli"

func main() {
	cli.Execute()
}

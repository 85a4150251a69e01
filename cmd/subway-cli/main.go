package main

import "github.com/transit-catalog/subway/internal/cli"

func main() {
	cli.Execute()
}

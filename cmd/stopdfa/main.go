package main

import "stopdfa/internal/cli"

func main() {
	cli.Execute()
}

package main

import "textgate/internal/cli"

func main() {
	cli.Execute()
}

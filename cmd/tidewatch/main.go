package main

import "github.com/mfukuda/tidewatch/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/jgbaldwinbrown/sampstat/internal/cli"

func main() {
	cli.Execute()
}

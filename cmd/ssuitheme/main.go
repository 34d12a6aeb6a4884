package main

import "ssui-theme/internal/cli"

func main() {
	cli.Execute()
}

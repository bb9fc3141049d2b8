package main

import "github.com/kiereneinar/windowscan/cli"

func main() {
	cli.Execute()
}

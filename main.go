package main

import "wine-explorer/cmd"

func main() {
	cmd.Execute()
}

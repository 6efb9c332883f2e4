package main

import "hemttrun/cmd"

func main() {
	cmd.Execute()
}

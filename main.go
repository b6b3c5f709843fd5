package main

import "altofs/cmd"

func main() {
	cmd.Execute()
}

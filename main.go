package main

import "yog/cmd"

func main() {
	cmd.Execute()
}

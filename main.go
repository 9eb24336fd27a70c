package main

import "github.com/fetchtube/fetchtube/cmd"

func main() {
	cmd.Execute()
}

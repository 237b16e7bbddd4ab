package main

import "github.com/MShaffar19/chorerun/cmd"

func main() {
	cmd.Execute()
}

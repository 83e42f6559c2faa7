package main

import "github.com/toba/glint/cmd"

func main() {
	cmd.Execute()
}

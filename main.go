package main

import "github.com/Bryyzxm/auto-short/cmd"

func main() {
	cmd.Execute()
}

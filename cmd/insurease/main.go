package main

import "github.com/SilasBach/insurease/cmd/insurease/cmd"

func main() {
	cmd.Execute()
}

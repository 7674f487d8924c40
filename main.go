package main

import "github.com/gaurav-prasanna/markconvert/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/dlogic/argue/pkg/cmd"

func main() {
	cmd.Execute()
}

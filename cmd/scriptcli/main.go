package main

import (
	"massnet.org/scriptkit/cmd/scriptcli/cmd"
)

func main() {
	cmd.Execute()
}

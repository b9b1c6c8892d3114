package main

import (
	"github.com/headstamp/headstamp/cmd"
)

func main() {
	cmd.Execute()
}

package main

import (
	"github.com/c9s/gemini/pkg/cmd"
)

func main() {
	cmd.Execute()
}

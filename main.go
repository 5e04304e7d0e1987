package main

import (
	"os"

	"github.com/yuchen/eyebright/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

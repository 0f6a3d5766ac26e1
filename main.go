package main

import (
	"fmt"
	"os"

	"github.com/hostsmith/hostsmith/cmd"
	"github.com/hostsmith/hostsmith/version"
)

func main() {
	if len(os.Args) == 2 {
		switch os.Args[1] {
		case "--version", "-v", "version", "v", "ver":
			fmt.Println(version.Get())
			os.Exit(0)
		}
	}
	cmd.Execute()
}

// Command lipsum prints placeholder text.
//
//	lipsum [flags] <command> [n]
//
// Run "lipsum -h" for the command list.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

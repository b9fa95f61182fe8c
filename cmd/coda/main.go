// coda parses coda source files and prints their syntax trees.
package main

import "github.com/coda-lang/coda/internal/cmd"

func main() {
	cmd.Execute()
}

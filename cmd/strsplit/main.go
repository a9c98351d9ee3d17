/*
Command strsplit splits texts at delimiters and prints the fragments.

Usage:

	strsplit split -d , "a,b,,c"
	strsplit split -d / -n 1 --reverse "usr/local/bin"
	strsplit file --comment "#" -d : /etc/passwd
	strsplit conf settings.conf

Run 'strsplit help' for a list of commands.
*/
package main

import (
	"os"

	"github.com/npillmayer/strsplit/cmd/strsplit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Command ymdhms2jd converts a calendar date and time to a fractional
// Julian Date.
//
// Usage:
//
//	ymdhms2jd year month day hour minute second
package main

import (
	"os"

	"github.com/roach88/ymdhms2jd/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

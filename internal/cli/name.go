package cli

import (
	"fmt"

	petname "github.com/dustinkirkland/golang-petname"
)

// Renders without an explicit output path get a readable random file name,
// so repeated runs don't overwrite each other.

func init() {
	// The default mode repeats the same sequence of names on every run.
	petname.NonDeterministicMode()
}

func outputName(format string) string {
	return fmt.Sprintf("sierpinski-%s.%s", petname.Generate(2, "-"), format)
}

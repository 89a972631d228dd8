// Command coretb drives a synchronous core through reset and a fixed number of
// clock cycles, feeding it a program from an instruction memory file and
// recording a signal trace.
package main

import (
	"github.com/tebeka/atexit"

	"github.com/sarchlab/coretb/coretb/cmd"
)

func main() {
	atexit.Exit(cmd.Execute())
}

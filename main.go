package main

import (
	"github.com/uiscout/uiscout/cmd"

	// Register platform backends.
	_ "github.com/uiscout/uiscout/internal/platform/linuxproc"
)

func main() {
	cmd.Execute()
}

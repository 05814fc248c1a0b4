package main

import (
	"github.com/classroom-tools/classpick/cmd"
)

func main() {
	cmd.Execute()
}

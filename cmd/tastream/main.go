package main

import (
	"github.com/kaelx/tastream/pkg/cmd"
)

func main() {
	cmd.Execute()
}

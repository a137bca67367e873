package main

import (
	"shipctl/cmd/cli/app/cmd"
)

func main() {
	cmd.Execute()
}

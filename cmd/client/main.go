package main

import (
	"librarydesk/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}

package main

import "github.com/frankvdh/pdflinedtables/cmd/linedtables/cmd"

func main() {
	cmd.Execute()
}

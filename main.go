package main

import (
	"github/custodia/signing-service/cmd"
)

func main() {
	cmd.Execute()
}

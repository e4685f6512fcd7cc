package main

import (
	"github.com/uaetax/tax-calculator/cmd"
)

func main() {
	cmd.Execute()
}

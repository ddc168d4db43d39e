package main

import "github.com/A4NG31/FinanceFlow-Pro/cmd"

func main() {
	cmd.Execute()
}

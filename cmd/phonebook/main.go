package main

import "github.com/aalvaropc/phonebook/internal/cli"

func main() {
	cli.Execute()
}

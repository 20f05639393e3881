package main

import "github.com/krobus00/refdata-service/cmd"

func main() {
	cmd.Execute()
}

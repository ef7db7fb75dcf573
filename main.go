package main

import "github.com/mindcare/mindcare_backend/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/matthieukhl/clientia/internal/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/theirongolddev/carpro/cmd"

func main() {
	cmd.Execute()
}

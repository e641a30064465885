package main

import "github.com/theirongolddev/finpath/cmd"

func main() {
	cmd.Execute()
}

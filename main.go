package main

import "github.com/mouse-blink/cyclact/cmd"

func main() {
	cmd.Execute()
}

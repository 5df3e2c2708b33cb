package main

import "github.com/mvickers/sugarcap/cmd"

func main() {
	cmd.Execute()
}

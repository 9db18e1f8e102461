package main

import "github.com/Xovval/diy-lang/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/frahmantamala/productivity-management/cmd"

func main() {
	cmd.Execute()
}

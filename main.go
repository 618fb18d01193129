package main

import "github.com/editorial-pipelines/canonform/cmd"

func main() {
	cmd.Execute()
}

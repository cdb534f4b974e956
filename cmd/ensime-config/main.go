package main

import "github.com/delexi/ensime/internal/cli"

func main() {
	cli.Execute()
}

package main

import "pom-version-checker/internal/cli"

func main() {
	cli.Execute()
}

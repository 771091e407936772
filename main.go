package main

import "github.com/LegacyCodeHQ/depmap/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/martinhoracek/TerraFirma/cmd"

func main() {
	cmd.Execute()
}

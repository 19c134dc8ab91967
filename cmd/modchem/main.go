package main

import "modchem-backend/cmd/modchem/cmd"

func main() {
	cmd.Execute()
}

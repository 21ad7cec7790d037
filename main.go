package main

import "github.com/Bemyself19/sehatynet_backend/cmd"

func main() {
	cmd.Execute()
}

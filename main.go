package main

import "feed-importer/cmd"

func main() {
	cmd.Execute()
}

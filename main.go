package main

import "fittrack/cmd/fittrack"

func main() {
	fittrack.Execute()
}

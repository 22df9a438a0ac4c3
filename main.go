package main

import "mergington.dev/backend/cmd/app"

func main() {
	app.Run()
}

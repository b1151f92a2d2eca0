package main

import (
	"exusiai.dev/demoapi/cmd/app"
)

func main() {
	app.Run()
}

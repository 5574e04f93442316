package main

import "hiringbooth/internal/app"

func main() {
	app.Run()
}

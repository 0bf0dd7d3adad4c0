package main

import "opsboard/internal/app"

// @title           opsboard API
// @version         1.0
// @description     Weekly operations board: categories x people task matrix with dated notes, backup/restore and a printable weekly report.
// @BasePath        /
func main() {
	app.Run()
}

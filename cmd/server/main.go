package main

import "agencyhub/internal/app"

// @title           AgencyHub API
// @version         1.0
// @description     Agency-client workspace: task board, billing, reports and messaging.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}

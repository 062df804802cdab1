package main

import "civilprotection-backend/cmd"

// @title Civil Protection Backend API
// @version 1.0
// @description REST API to manage the volunteers, vehicles and services of a civil protection organization.
// @description Read endpoints are public and return more fields when the bearer token carries the details or full permissions.
// @description Write endpoints require an Auth0 access token with the matching permission.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Enter 'Bearer' [space] and then your token.
func main() {
	cmd.Execute()
}

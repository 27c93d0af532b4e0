package main

import "github.com/killallgit/jobscout-api/cmd"

// @title           JobScout API
// @version         1.0.0
// @description     Aggregated job search: concurrent provider fan-out, deduplication, location filtering and pagination
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/jobscout-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}

package main

// @title Oakline Partners API
// @version 1.0
// @description Partner-facing lead intake and eligibility API for sale-leaseback and home equity investment products.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := LoadConfiguration()

	app := NewApp(cfg)
	defer app.cleanup()

	app.InitializeServer()
	app.StartServer()
}

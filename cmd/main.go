package main

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/IshaanAggrawal/InstituteManager/config"
	"github.com/IshaanAggrawal/InstituteManager/database"
	"github.com/IshaanAggrawal/InstituteManager/routes"
)

type payloadValidator struct {
	validate *validator.Validate
}

func (v *payloadValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

func main() {
	cfg := config.Load()

	// early fail: if the DB is down the process should not come up
	database.Connect(cfg)
	defer database.Close()

	e := echo.New()
	e.HideBanner = true
	e.Validator = &payloadValidator{validate: validator.New()}
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, cfg)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

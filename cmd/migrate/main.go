package main

import (
	"log"
	"os"

	"ecoparking/config"
	"ecoparking/helper"
	"ecoparking/infras/database"
)

const (
	argLength = 2
)

func main() {
	if len(os.Args) < argLength {
		log.Fatal("Migration direction (up/down) is required")
	}

	cfg := config.Get()

	conn, err := database.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	switch os.Args[1] {
	case helper.ActionUp:
		err = helper.Up(cfg, conn)
	case helper.ActionDown:
		err = helper.Down(cfg, conn)
	case helper.ActionDrop:
		err = helper.Drop(cfg, conn)
	case helper.ActionStepUp:
		err = helper.StepUp(cfg, conn)
	default:
		log.Fatal("Invalid direction. Use 'up', 'down', 'drop' or 'step-up'")
	}

	if err != nil {
		log.Fatal(err)
	}
}

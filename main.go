package main

import (
	"github.com/Warsame-Adam/skystream-api/startup"
	"github.com/Warsame-Adam/skystream-api/startup/config"
)

func main() {
	cfg := config.NewConfig()
	server := startup.NewServer(cfg)
	server.Start()
}

/*
Renders a static desk still life (monitor, keyboard, mouse, mousepad)
using the tableau engine package.
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/tableau/engine"
	"github.com/spaghettifunk/tableau/testbed"
)

func main() {
	config, err := engine.LoadApplicationConfig("config.toml")
	if err != nil {
		panic(err)
	}

	game, err := testbed.NewStillLifeGame(config)
	if err != nil {
		panic(err)
	}

	eng, err := engine.New(game.Game)
	if err != nil {
		panic(err)
	}

	if err := eng.Initialize(); err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		<-sigCh
		_ = eng.Shutdown()
	}()

	// run engine
	if err := eng.Run(); err != nil {
		panic(err)
	}
}

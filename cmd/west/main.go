package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"West/config"
	"West/internal/console"
	"West/internal/game/engine"
	"West/internal/game/player"
	"West/internal/game/table"
	"West/internal/utils"

	"github.com/google/uuid"
)

func main() {
	path := flag.String("config", config.DefaultPath, "config file")
	flag.Parse()

	if err := config.Load(*path); err != nil {
		if !errors.Is(err, config.ErrNoFile) {
			utils.Log.Fatal("config", "err", err)
		}
		utils.Log.Warn("using default config", "err", err)
	}
	utils.Init(config.C.Log.Level)

	seed := config.C.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	id := uuid.NewString()
	delay := time.Duration(config.C.Game.DelayMillis) * time.Millisecond
	listener := console.NewListener(os.Stdout, delay)

	var choosers [table.Seats]player.Chooser
	for i := range choosers {
		choosers[i] = player.Bot{Log: utils.Log.With("match", id)}
	}
	if seat := config.C.Game.HumanSeat; seat > 0 {
		choosers[seat-1] = player.Human{
			In:   console.NewReader(os.Stdin),
			Out:  os.Stdout,
			Show: listener.ShowHand,
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	utils.Log.Debug("starting match", "match", id, "seed", seed, "human", config.C.Game.HumanSeat)
	eng := engine.NewEngine(table.New(id), listener, choosers, seed)
	if _, err := eng.Run(ctx); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			fmt.Println("bye")
			return
		}
		utils.Log.Fatal("match failed", "err", err)
	}
}

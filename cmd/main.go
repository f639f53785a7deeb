package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"West/config"
	"West/internal/game/manager"
	"West/internal/history"
	"West/internal/storage"
	"West/internal/utils"
	"West/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	if err := config.Load(config.DefaultPath); err != nil {
		if !errors.Is(err, config.ErrNoFile) {
			utils.Log.Fatal("config", "err", err)
		}
		utils.Log.Warn("using default config", "err", err)
	}
	utils.Init(config.C.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	//-------------------------------------------------------
	// 1. 历史记录存储（memory / redis）
	//-------------------------------------------------------
	repo := history.NewMemoryRepo()
	if config.C.History.Backend == "redis" {
		rdb, err := storage.InitRedis(ctx, config.C.Redis.Addr, config.C.Redis.Password, config.C.Redis.DB)
		if err != nil {
			utils.Log.Fatal("Redis init failed", "err", err)
		}
		defer rdb.Close()
		repo = history.NewRedisRepo(rdb)
	}
	hist := history.NewService(repo, config.C.History.TTLSeconds, config.C.History.RecentLimit)

	//-------------------------------------------------------
	// 2. 初始化 Hub（必须最先启动）
	//-------------------------------------------------------
	hub := websocket.NewHub()
	hub.OnIncoming = func(msg websocket.IncomingMessage) {
		utils.Log.Debug("ignored client message", "from", msg.From, "event", msg.Event)
	}
	go hub.Run()
	defer hub.Close()

	//-------------------------------------------------------
	// 3. GameManager
	//-------------------------------------------------------
	delay := time.Duration(config.C.Game.DelayMillis) * time.Millisecond
	gameMgr := manager.NewGameManager(hub, hist, delay)
	defer gameMgr.Close()

	//-------------------------------------------------------
	// 4. Gin + CORS
	//-------------------------------------------------------
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "running": gameMgr.Running()})
	})

	mh := manager.NewHandler(gameMgr, hist)
	r.POST("/matches", mh.Start)
	r.GET("/matches/:id", mh.Get)

	hh := history.NewHandler(hist)
	r.GET("/history", hh.List)
	r.GET("/history/:id", hh.Get)

	r.GET("/ws", websocket.ServeWS(hub))

	//-------------------------------------------------------
	// 5. 启动服务器
	//-------------------------------------------------------
	srv := &http.Server{Addr: config.C.Server.Port, Handler: r}
	go func() {
		utils.Log.Info("Server running", "addr", config.C.Server.Port, "history", config.C.History.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Log.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Log.Error("shutdown", "err", err)
	}
}

package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"deskpet/config"
	"deskpet/internal/game"
	"deskpet/internal/logger"
	"deskpet/internal/sprite"
)

func main() {
	cfg, err := config.Default()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	zl.Info("starting desktop pet")
	zl.Info("right click the pet to quit")

	if err := run(cfg, zl); err != nil {
		zl.Fatal("pet exited", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	// 1. 加载素材，缺一个就直接退出
	sheets, err := sprite.LoadSheets(os.DirFS(cfg.Assets.Dir), cfg.Assets, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return fmt.Errorf("load sprites: %w", err)
	}
	zl.Info("sprites loaded", zap.Int("animations", len(sheets)))

	// 2. 基础窗口设置
	ebiten.SetWindowDecorated(false)  // 无边框
	ebiten.SetScreenTransparent(true) // 透明背景
	ebiten.SetWindowFloating(true)    // 始终置顶
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetTPS(cfg.TPS())

	// 3. 启动
	mgr := game.NewManager(cfg, sprite.NewSet(sheets), rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), zl)
	return ebiten.RunGame(mgr)
}

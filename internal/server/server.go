package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meetRecorder/internal/config"
	"meetRecorder/internal/database"
	"meetRecorder/internal/logger"
)

type Server struct {
	cfg  *config.Cfg
	log  *logger.Zap
	repo *database.RecordingRepository
}

func New(cfg *config.Cfg, log *logger.Zap, repo *database.RecordingRepository) *Server {
	return &Server{
		cfg:  cfg,
		log:  log,
		repo: repo,
	}
}

func (s *Server) Run(ctx context.Context) error {
	r := gin.New()
	r.Use(gin.Recovery())

	// Простейший лог-мидлвар
	r.Use(func(c *gin.Context) {
		s.log.Info("HTTP",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Список записей
	r.GET("/api/recordings", func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

		recs, err := s.repo.ListRecordings(limit, offset)
		if err != nil {
			s.log.Error("db list recordings", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, recs)
	})

	// Получить запись
	r.GET("/api/recordings/:id", func(c *gin.Context) {
		id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad id"})
			return
		}
		rec, err := s.repo.GetRecordingByID(uint(id64))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, rec)
	})

	return r.Run(":" + s.cfg.Server.Port)
}

package mock_generator

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/corboo/claire-video-generator/application/ports/outbound"
)

const heartbeatInterval = 15 * time.Second

type MockTalksController interface {
	CreateTalk(c *gin.Context)
	RegisterRoutes(g *gin.RouterGroup)
}

type mockTalksController struct {
	logger outbound.LoggerPort
	runner *Runner
}

func NewMockTalksController(logger outbound.LoggerPort, runner *Runner) MockTalksController {
	return &mockTalksController{
		logger: logger,
		runner: runner,
	}
}

func (m *mockTalksController) CreateTalk(c *gin.Context) {
	newCtx, cancel := context.WithCancel(c)
	defer cancel()

	events, errCh := m.runner.Run(newCtx)

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	sentError := false
	for events != nil || errCh != nil {
		select {
		case event, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			c.SSEvent("stage", event)
			c.Writer.Flush()
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			cancel()
			m.logger.Error(err, "error in mock pipeline")
			if !sentError {
				c.SSEvent("error", "internal server error")
				c.Writer.Flush()
				sentError = true
			}
		case <-heartbeat.C:
			if _, err := c.Writer.WriteString(": ping\n\n"); err != nil {
				cancel()
				continue
			}
			c.Writer.Flush()
		}
	}

	if sentError {
		return
	}

	c.SSEvent("generation_complete", nil)
	c.Writer.Flush()
}

func (m *mockTalksController) RegisterRoutes(g *gin.RouterGroup) {
	g.POST("/mock/talks", m.CreateTalk)
}

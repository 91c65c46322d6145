package mock_generator

import (
	"github.com/gin-gonic/gin"

	"github.com/corboo/claire-video-generator/application/ports/outbound"
)

func Init(g *gin.RouterGroup, workerPool outbound.TaskDispatcher, logger outbound.LoggerPort) {
	stageReader := NewFileStageReader(logger)
	runner := NewRunner(workerPool, stageReader, logger)
	mockController := NewMockTalksController(logger, runner)

	mockController.RegisterRoutes(g)
}

package controllers

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/corboo/claire-video-generator/application/ports/inbound"
	"github.com/corboo/claire-video-generator/application/ports/outbound"
	"github.com/corboo/claire-video-generator/config"
	"github.com/corboo/claire-video-generator/domain"
	"github.com/corboo/claire-video-generator/infrastructure/gin_interface/dto"
	"github.com/corboo/claire-video-generator/middleware"
)

const (
	defaultAvatarFileName = "avatar.png"
	anonymousUserID       = "anonymous"
	heartbeatInterval     = 15 * time.Second
)

var allowedAvatarExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

type TalksController interface {
	CreateTalk(c *gin.Context)
	RegisterRoutes(g *gin.RouterGroup)
}

type talksController struct {
	logger       outbound.LoggerPort
	talkPipeline inbound.TalkPipelinePort
	avatarConfig *config.AvatarConfig
}

func NewTalksController(
	logger outbound.LoggerPort,
	talkPipeline inbound.TalkPipelinePort,
	avatarConfig *config.AvatarConfig,
) TalksController {
	return &talksController{
		logger:       logger,
		talkPipeline: talkPipeline,
		avatarConfig: avatarConfig,
	}
}

// CreateTalk runs the full generation pipeline for one script, streaming
// stage events to the caller as SSE.
func (t *talksController) CreateTalk(c *gin.Context) {
	newCtx, cancel := context.WithCancel(c)
	defer cancel()

	createTalkRequest, avatar, ok := t.bindRequest(c)
	if !ok {
		return
	}

	userID := c.GetString(middleware.ContextUserIDKey)
	if userID == "" {
		userID = createTalkRequest.UserID
	}
	if userID == "" {
		userID = anonymousUserID
	}

	talkID := uuid.NewString()

	events, errCh := t.talkPipeline.StartPipeline(newCtx, inbound.StartPipelineParams{
		TalkID:  talkID,
		UserID:  userID,
		Script:  createTalkRequest.Script,
		VoiceID: createTalkRequest.VoiceID,
		Avatar:  avatar,
	})

	// Heartbeats share this loop with the stage events so nothing else
	// ever writes to the response concurrently.
	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	var result *domain.StageEvent
	sentError := false
	for events != nil || errCh != nil {
		select {
		case event, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if event.Stage == domain.DoneStage {
				done := event
				result = &done
			}
			c.SSEvent("stage", event)
			c.Writer.Flush()
		case pipelineErr, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			cancel()
			t.logger.Error(pipelineErr, "error in talk pipeline")
			if !sentError {
				c.SSEvent("error", "video generation failed")
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

	t.logger.InfoWithFields("talk generation complete", map[string]interface{}{
		"talk_id": talkID,
	})

	c.SSEvent("generation_complete", result)
	c.Writer.Flush()
}

func (t *talksController) RegisterRoutes(g *gin.RouterGroup) {
	g.POST("/talks", t.CreateTalk)
}

// bindRequest reads the request from JSON or multipart form and resolves the
// avatar image, falling back to the bundled default.
func (t *talksController) bindRequest(c *gin.Context) (dto.CreateTalkRequest, domain.AvatarImage, bool) {
	var createTalkRequest dto.CreateTalkRequest
	var avatar domain.AvatarImage

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&createTalkRequest); err != nil {
			t.abortBadRequest(c, err)
			return createTalkRequest, avatar, false
		}

		fileHeader, err := c.FormFile("avatar")
		if err == nil {
			content, readErr := t.readUpload(fileHeader)
			if readErr != nil {
				t.abortBadRequest(c, readErr)
				return createTalkRequest, avatar, false
			}
			avatar = domain.AvatarImage{
				Content:  content,
				FileName: fileHeader.Filename,
			}
		} else if err != http.ErrMissingFile {
			t.abortBadRequest(c, err)
			return createTalkRequest, avatar, false
		}
	} else {
		if err := c.ShouldBindJSON(&createTalkRequest); err != nil {
			t.abortBadRequest(c, err)
			return createTalkRequest, avatar, false
		}
	}

	if avatar.Content == nil {
		content, err := os.ReadFile(t.avatarConfig.DefaultAvatarPath)
		if err != nil {
			t.logger.Error(err, "failed to read the default avatar")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "default avatar unavailable"})
			return createTalkRequest, avatar, false
		}
		avatar = domain.AvatarImage{
			Content:  content,
			FileName: defaultAvatarFileName,
		}
	}

	return createTalkRequest, avatar, true
}

func (t *talksController) readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	ext := strings.ToLower(path.Ext(fileHeader.Filename))
	if !allowedAvatarExtensions[ext] {
		return nil, fmt.Errorf("unsupported avatar image type %q", ext)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer func(file multipart.File) {
		err := file.Close()
		if err != nil {
			t.logger.Error(err, "failed to close the uploaded file")
		}
	}(file)

	return io.ReadAll(file)
}

func (t *talksController) abortBadRequest(c *gin.Context, err error) {
	abortErr := c.AbortWithError(http.StatusBadRequest, err)
	if abortErr != nil {
		t.logger.Error(abortErr, "failed to abort with error")
	}
}

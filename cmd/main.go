package main

import (
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"github.com/corboo/claire-video-generator/application/services"
	"github.com/corboo/claire-video-generator/config"
	"github.com/corboo/claire-video-generator/infrastructure/adapters"
	"github.com/corboo/claire-video-generator/infrastructure/gin_interface/controllers"
	"github.com/corboo/claire-video-generator/middleware"
	mockgenerator "github.com/corboo/claire-video-generator/mock"
)

func main() {
	_ = godotenv.Load()

	humeConfig, err := config.GetHumeConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get hume config")
	}

	didConfig, err := config.GetDIDConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get d-id config")
	}

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	dynamoConfig, err := config.GetDynamoConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get dynamo config")
	}

	avatarConfig, err := config.GetAvatarConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get avatar config")
	}

	serverConfig := config.GetServerConfig()

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))

	s3Client := s3.New(sess)
	dynamoClient := dynamodb.New(sess)

	contentFetcher := adapters.NewContentFetcher(zeroLogger)

	speechSynthesizer := adapters.NewHumeSpeechSynthesizer(contentFetcher, humeConfig, zeroLogger)
	mediaUploader := adapters.NewDIDMediaUploader(contentFetcher, didConfig, zeroLogger)
	talkDirector := adapters.NewDIDTalkDirector(contentFetcher, didConfig, zeroLogger)
	videoFetcher := adapters.NewVideoFetcher(contentFetcher, zeroLogger)

	videoPublisher := adapters.NewS3VideoPublisher(zeroLogger, s3Client, s3Config)
	talkCache := adapters.NewDynamoTalkCache(zeroLogger, dynamoClient, dynamoConfig)

	talkPipeline := services.NewTalkPipelineOrchestrator(zeroLogger, workerPool, speechSynthesizer,
		mediaUploader, talkDirector, videoFetcher, videoPublisher, talkCache)

	talksController := controllers.NewTalksController(zeroLogger, talkPipeline, avatarConfig)

	router := gin.Default()

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.StaticFile("/", "web/index.html")
	router.Static("/assets", "web/assets")

	api := router.Group("/")
	if serverConfig.JwksUrl != "" {
		authHandler, err := middleware.NewAuthHandler(serverConfig.JwksUrl, zeroLogger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create auth handler!")
		}
		api.Use(authHandler.AuthMiddleware())
	}
	api.Use(middleware.SSEMiddleware())

	mockgenerator.Init(api, workerPool, zeroLogger)

	talksController.RegisterRoutes(api)

	err = router.Run(":" + serverConfig.Port)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}

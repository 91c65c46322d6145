package adapters

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"

	"github.com/corboo/claire-video-generator/application/ports/outbound"
	"github.com/corboo/claire-video-generator/config"
	"github.com/corboo/claire-video-generator/domain"
)

type dynamoTalkItem struct {
	TalkId      string `dynamodbav:"talk_id"`
	UserId      string `dynamodbav:"user_id"`
	Script      string `dynamodbav:"script"`
	Status      string `dynamodbav:"status"`
	ResultUrl   string `dynamodbav:"result_url"`
	VideoKey    string `dynamodbav:"video_key"`
	VideoRegion string `dynamodbav:"video_region"`
	TTL         int64  `dynamodbav:"ttl"`
}

type dynamoTalkCache struct {
	logger       outbound.LoggerPort
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoTalkCache(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB, dynamoConfig *config.DynamoConfig) outbound.TalkCachePort {
	return &dynamoTalkCache{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (c *dynamoTalkCache) Save(ctx context.Context, talk domain.Talk) error {
	item := dynamoTalkItem{
		TalkId:      talk.ID,
		UserId:      talk.UserID,
		Script:      talk.Script,
		Status:      string(talk.Status),
		ResultUrl:   talk.ResultURL,
		VideoKey:    talk.VideoKey,
		VideoRegion: talk.VideoRegion,
		TTL:         time.Now().Add(time.Duration(c.dynamoConfig.TtlMinutes) * time.Minute).Unix(),
	}
	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		c.logger.ErrorWithFields(err, "failed to marshal talk item", map[string]interface{}{
			"talk_id": talk.ID,
		})
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(c.dynamoConfig.TableName),
	}

	_, err = c.dynamoSvc.PutItemWithContext(ctx, input)
	if err != nil {
		c.logger.ErrorWithFields(err, "failed to save talk item", map[string]interface{}{
			"talk_id": talk.ID,
		})
		return err
	}

	return nil
}

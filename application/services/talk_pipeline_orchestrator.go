package services

import (
	"context"
	"sync"

	"github.com/corboo/claire-video-generator/application/ports/inbound"
	"github.com/corboo/claire-video-generator/application/ports/outbound"
	"github.com/corboo/claire-video-generator/channel_utils"
	"github.com/corboo/claire-video-generator/domain"
)

const audioFileName = "speech.mp3"

type talkPipelineOrchestrator struct {
	logger       outbound.LoggerPort
	workerPool   outbound.TaskDispatcher
	synthesizer  outbound.SpeechSynthesizerPort
	uploader     outbound.MediaUploaderPort
	director     outbound.TalkDirectorPort
	videoFetcher outbound.VideoFetcherPort
	publisher    outbound.VideoPublisherPort
	talkCache    outbound.TalkCachePort
}

func NewTalkPipelineOrchestrator(
	logger outbound.LoggerPort,
	workerPool outbound.TaskDispatcher,
	synthesizer outbound.SpeechSynthesizerPort,
	uploader outbound.MediaUploaderPort,
	director outbound.TalkDirectorPort,
	videoFetcher outbound.VideoFetcherPort,
	publisher outbound.VideoPublisherPort,
	talkCache outbound.TalkCachePort) inbound.TalkPipelinePort {
	return &talkPipelineOrchestrator{
		logger:       logger,
		workerPool:   workerPool,
		synthesizer:  synthesizer,
		uploader:     uploader,
		director:     director,
		videoFetcher: videoFetcher,
		publisher:    publisher,
		talkCache:    talkCache,
	}
}

func (o *talkPipelineOrchestrator) StartPipeline(ctx context.Context, params inbound.StartPipelineParams) (<-chan domain.StageEvent, <-chan error) {
	out := make(chan domain.StageEvent)
	errCh := make(chan error, 5)

	newCtx, cancel := context.WithCancel(ctx)

	err := o.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)
		defer cancel()

		o.saveRecord(params, domain.TalkStarted, nil)

		result, err := o.run(newCtx, params, out)
		if err != nil {
			o.saveRecord(params, domain.TalkError, nil)
			select {
			case errCh <- err:
			case <-newCtx.Done():
			}
			return
		}
		if result == nil {
			return
		}

		o.saveRecord(params, domain.TalkDone, result)
		o.emit(newCtx, out, result.ToEvent())
	})
	if err != nil {
		// The worker never ran, so nothing else will close the channels
		// and unblock the caller's drain loop.
		cancel()
		errCh <- err
		close(errCh)
		close(out)
	}

	return out, errCh
}

// run executes the stages and returns nil, nil when the context was
// cancelled before the pipeline finished.
func (o *talkPipelineOrchestrator) run(ctx context.Context, params inbound.StartPipelineParams,
	out chan<- domain.StageEvent) (*domain.TalkResult, error) {
	audio, imageURL, err := o.prepareMedia(ctx, params, out)
	if err != nil {
		return nil, err
	}
	select {
	case <-ctx.Done():
		return nil, nil
	default:
	}

	o.emit(ctx, out, domain.StageEvent{TalkID: params.TalkID, Stage: domain.AudioUploadStage, Message: "uploading audio"})
	audioURL, err := o.uploader.Upload(ctx, outbound.UploadMediaRequest{
		Content:  audio,
		Kind:     outbound.AudioMediaKind,
		FileName: audioFileName,
	})
	if err != nil {
		o.logger.Error(err, "failed to upload audio")
		return nil, err
	}

	o.emit(ctx, out, domain.StageEvent{TalkID: params.TalkID, Stage: domain.VideoStage, Message: "rendering video"})
	remoteID, err := o.director.Create(ctx, outbound.CreateTalkRequest{
		ImageURL: imageURL,
		AudioURL: audioURL,
	})
	if err != nil {
		o.logger.Error(err, "failed to create talk")
		return nil, err
	}

	resultURL, err := o.director.WaitForResult(ctx, remoteID)
	if err != nil {
		o.logger.Error(err, "failed waiting for talk result")
		return nil, err
	}

	o.emit(ctx, out, domain.StageEvent{TalkID: params.TalkID, Stage: domain.PublishStage, Message: "publishing video"})
	video, err := o.videoFetcher.Fetch(ctx, resultURL)
	if err != nil {
		o.logger.Error(err, "failed to fetch result video")
		return nil, err
	}

	published, err := o.publisher.Publish(ctx, outbound.PublishVideoRequest{
		TalkID:  params.TalkID,
		UserID:  params.UserID,
		Content: video,
	})
	if err != nil {
		o.logger.Error(err, "failed to publish video")
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, nil
	default:
	}

	return &domain.TalkResult{
		TalkID:      params.TalkID,
		ResultURL:   resultURL,
		VideoKey:    published.VideoKey,
		VideoRegion: published.StoreRegion,
	}, nil
}

// prepareMedia synthesizes the voice clip and uploads the avatar image in
// parallel, since neither depends on the other.
func (o *talkPipelineOrchestrator) prepareMedia(ctx context.Context, params inbound.StartPipelineParams,
	out chan<- domain.StageEvent) (audio []byte, imageURL string, err error) {
	newCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	voiceErrCh := make(chan error, 1)
	avatarErrCh := make(chan error, 1)

	var wg sync.WaitGroup

	voiceTask := func() {
		defer wg.Done()
		defer close(voiceErrCh)
		o.emit(newCtx, out, domain.StageEvent{TalkID: params.TalkID, Stage: domain.VoiceStage, Message: "generating voice"})
		clip, synthErr := o.synthesizer.Synthesize(newCtx, outbound.SynthesizeSpeechRequest{
			Text:    params.Script,
			VoiceID: params.VoiceID,
		})
		if synthErr != nil {
			o.logger.Error(synthErr, "failed to synthesize speech")
			voiceErrCh <- synthErr
			cancel()
			return
		}
		audio = clip
	}

	avatarTask := func() {
		defer wg.Done()
		defer close(avatarErrCh)
		o.emit(newCtx, out, domain.StageEvent{TalkID: params.TalkID, Stage: domain.AvatarStage, Message: "uploading avatar"})
		url, uploadErr := o.uploader.Upload(newCtx, outbound.UploadMediaRequest{
			Content:  params.Avatar.Content,
			Kind:     outbound.ImageMediaKind,
			FileName: params.Avatar.FileName,
		})
		if uploadErr != nil {
			o.logger.Error(uploadErr, "failed to upload avatar")
			avatarErrCh <- uploadErr
			cancel()
			return
		}
		imageURL = url
	}

	for _, task := range []func(){voiceTask, avatarTask} {
		wg.Add(1)
		if err = o.workerPool.Submit(task); err != nil {
			wg.Done()
			cancel()
			o.logger.Error(err, "failed to submit media preparation task")
			return nil, "", err
		}
	}

	mergedErrCh, err := channel_utils.MergeChannels(o.workerPool, voiceErrCh, avatarErrCh)
	if err != nil {
		return nil, "", err
	}

	wg.Wait()

	// Drain fully so the merge workers always run to completion.
	var firstErr error
	for stageErr := range mergedErrCh {
		if firstErr == nil {
			firstErr = stageErr
		}
	}
	if firstErr != nil {
		return nil, "", firstErr
	}

	select {
	case <-ctx.Done():
		return nil, "", nil
	default:
	}

	return audio, imageURL, nil
}

func (o *talkPipelineOrchestrator) emit(ctx context.Context, out chan<- domain.StageEvent, event domain.StageEvent) {
	select {
	case out <- event:
	case <-ctx.Done():
	}
}

// saveRecord is best-effort: a cache failure never fails a talk that already
// has a playable video.
func (o *talkPipelineOrchestrator) saveRecord(params inbound.StartPipelineParams, status domain.TalkStatus, result *domain.TalkResult) {
	talk := domain.NewTalk(params.TalkID, params.UserID, params.Script, params.VoiceID)
	talk.Status = status
	if result != nil {
		talk.ResultURL = result.ResultURL
		talk.VideoKey = result.VideoKey
		talk.VideoRegion = result.VideoRegion
	}

	err := o.talkCache.Save(context.Background(), talk)
	if err != nil {
		o.logger.ErrorWithFields(err, "failed to save talk record", map[string]interface{}{
			"talk_id": params.TalkID,
		})
	}
}

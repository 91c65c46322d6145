package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path"
	"strings"

	"github.com/corboo/claire-video-generator/application/ports/outbound"
	"github.com/corboo/claire-video-generator/config"
)

var mimeTypesByExtension = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
}

type didUploadResponse struct {
	Url string `json:"url"`
}

type didMediaUploader struct {
	ContentFetcher
	logger    outbound.LoggerPort
	didConfig *config.DIDConfig
}

func NewDIDMediaUploader(contentFetcher ContentFetcher, didConfig *config.DIDConfig, logger outbound.LoggerPort) outbound.MediaUploaderPort {
	return &didMediaUploader{
		ContentFetcher: contentFetcher,
		logger:         logger,
		didConfig:      didConfig,
	}
}

// Upload pushes a media blob to D-ID and returns the URL the provider stored
// it under, which later talk requests reference.
func (d *didMediaUploader) Upload(ctx context.Context, uploadReq outbound.UploadMediaRequest) (string, error) {
	req, err := d.getRequest(ctx, uploadReq)
	if err != nil {
		d.logger.ErrorWithFields(err, "failed to construct the D-ID upload request", map[string]interface{}{
			"kind":     uploadReq.Kind,
			"fileName": uploadReq.FileName,
		})
		return "", err
	}

	rawRes, err := d.FetchContent(req)
	if err != nil {
		return "", err
	}

	var uploadRes didUploadResponse
	err = json.Unmarshal(rawRes, &uploadRes)
	if err != nil {
		d.logger.Error(err, "failed to unmarshal the D-ID upload response")
		return "", err
	}
	if uploadRes.Url == "" {
		return "", fmt.Errorf("D-ID upload response contains no url")
	}

	return uploadRes.Url, nil
}

func (d *didMediaUploader) getRequest(ctx context.Context, uploadReq outbound.UploadMediaRequest) (*http.Request, error) {
	endpoint, fieldName, err := uploadTarget(uploadReq.Kind)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fieldName, uploadReq.FileName))
	header.Set("Content-Type", mimeTypeFor(uploadReq.FileName))

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err = part.Write(uploadReq.Content); err != nil {
		return nil, err
	}
	if err = writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.didConfig.ApiUrl+"/"+endpoint, &body)
	if err != nil {
		return nil, err
	}

	req.Header.Add("Authorization", "Basic "+d.didConfig.ApiKey)
	req.Header.Add("Content-Type", writer.FormDataContentType())

	return req, nil
}

func uploadTarget(kind outbound.MediaKind) (endpoint string, fieldName string, err error) {
	switch kind {
	case outbound.ImageMediaKind:
		return "images", "image", nil
	case outbound.AudioMediaKind:
		return "audios", "audio", nil
	default:
		return "", "", fmt.Errorf("unsupported media kind %q", kind)
	}
}

func mimeTypeFor(fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	if mimeType, ok := mimeTypesByExtension[ext]; ok {
		return mimeType
	}
	return "application/octet-stream"
}

package mock_generator

import (
	"encoding/json"
	"os"

	"github.com/corboo/claire-video-generator/application/ports/outbound"
)

type StageReader interface {
	Read(fileName string) ([]MockStageEvent, error)
}

type fileStageReader struct {
	logger outbound.LoggerPort
}

func NewFileStageReader(logger outbound.LoggerPort) StageReader {
	return &fileStageReader{
		logger: logger,
	}
}

func (f *fileStageReader) Read(fileName string) ([]MockStageEvent, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			f.logger.Error(err, "failed to close file")
		}
	}(file)

	var events []MockStageEvent
	if err := json.NewDecoder(file).Decode(&events); err != nil {
		f.logger.Error(err, "failed to decode json")
		return nil, err
	}

	return events, nil
}

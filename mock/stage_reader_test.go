package mock_generator

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/corboo/claire-video-generator/domain"
	"github.com/corboo/claire-video-generator/infrastructure/adapters"
)

func TestFileStageReader_Read(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "stages.json")
	payload := `[{"stage": "voice", "message": "generating voice", "delay": 1},
		{"stage": "done", "message": "video ready", "url": "https://example.com/v.mp4", "delay": 2}]`
	if err := os.WriteFile(fileName, []byte(payload), 0o644); err != nil {
		t.Fatal("failed to write stages file:", err)
	}

	reader := NewFileStageReader(adapters.NewZerologWrapperTo(io.Discard))

	events, err := reader.Read(fileName)
	if err != nil {
		t.Fatal("failed to read stage events:", err)
	}
	if len(events) != 2 {
		t.Fatal("unexpected event count:", len(events))
	}
	if events[0].Stage != domain.VoiceStage || events[0].Delay != 1 {
		t.Error("unexpected first event:", events[0])
	}
	if events[1].URL != "https://example.com/v.mp4" {
		t.Error("unexpected done url:", events[1].URL)
	}
}

func TestFileStageReader_MissingFile(t *testing.T) {
	reader := NewFileStageReader(adapters.NewZerologWrapperTo(io.Discard))

	if _, err := reader.Read(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

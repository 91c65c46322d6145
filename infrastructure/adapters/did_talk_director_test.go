package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/corboo/claire-video-generator/application/ports/outbound"
)

func TestDIDTalkDirector_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/talks" || r.Method != http.MethodPost {
			t.Error("unexpected request:", r.Method, r.URL.Path)
		}

		var req DIDTalkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal("failed to decode talk request:", err)
		}
		if req.SourceUrl != "https://d-id.example/images/abc" {
			t.Error("unexpected source url:", req.SourceUrl)
		}
		if req.Script.Type != "audio" || req.Script.AudioUrl != "https://d-id.example/audios/def" {
			t.Error("unexpected script:", req.Script)
		}

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id": "talk-1", "status": "created"}`)
	}))
	defer server.Close()

	logger := NewZerologWrapperTo(io.Discard)
	director := NewDIDTalkDirector(NewContentFetcher(logger), testDIDConfig(server.URL), logger)

	id, err := director.Create(context.Background(), outbound.CreateTalkRequest{
		ImageURL: "https://d-id.example/images/abc",
		AudioURL: "https://d-id.example/audios/def",
	})
	if err != nil {
		t.Fatal("failed to create talk:", err)
	}
	if id != "talk-1" {
		t.Fatal("unexpected talk id:", id)
	}
}

func TestDIDTalkDirector_WaitForResult(t *testing.T) {
	var polls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/talks/talk-1" {
			t.Error("unexpected path:", r.URL.Path)
		}
		if polls.Add(1) < 3 {
			fmt.Fprint(w, `{"id": "talk-1", "status": "started"}`)
			return
		}
		fmt.Fprint(w, `{"id": "talk-1", "status": "done", "result_url": "https://d-id.example/result.mp4"}`)
	}))
	defer server.Close()

	logger := NewZerologWrapperTo(io.Discard)
	director := NewDIDTalkDirector(NewContentFetcher(logger), testDIDConfig(server.URL), logger)

	url, err := director.WaitForResult(context.Background(), "talk-1")
	if err != nil {
		t.Fatal("failed waiting for result:", err)
	}
	if url != "https://d-id.example/result.mp4" {
		t.Fatal("unexpected result url:", url)
	}
	if polls.Load() != 3 {
		t.Fatal("unexpected poll count:", polls.Load())
	}
}

func TestDIDTalkDirector_WaitForResult_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": "talk-1", "status": "error", "error": "face not detected"}`)
	}))
	defer server.Close()

	logger := NewZerologWrapperTo(io.Discard)
	director := NewDIDTalkDirector(NewContentFetcher(logger), testDIDConfig(server.URL), logger)

	_, err := director.WaitForResult(context.Background(), "talk-1")
	if err == nil {
		t.Fatal("expected a provider error")
	}
}

func TestDIDTalkDirector_WaitForResult_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": "talk-1", "status": "started"}`)
	}))
	defer server.Close()

	logger := NewZerologWrapperTo(io.Discard)
	director := NewDIDTalkDirector(NewContentFetcher(logger), testDIDConfig(server.URL), logger)

	_, err := director.WaitForResult(context.Background(), "talk-1")
	if err == nil {
		t.Fatal("expected a timeout error")
	}
}

func TestDIDTalkDirector_WaitForResult_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": "talk-1", "status": "started"}`)
	}))
	defer server.Close()

	logger := NewZerologWrapperTo(io.Discard)
	director := NewDIDTalkDirector(NewContentFetcher(logger), testDIDConfig(server.URL), logger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := director.WaitForResult(ctx, "talk-1")
	if err == nil {
		t.Fatal("expected a context error")
	}
}

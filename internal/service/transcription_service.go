package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/lshigami/Skylark/config"
	"github.com/lshigami/Skylark/internal/apperrors"
	"github.com/rs/zerolog/log"
)

// Deployment name and API version are fixed; only endpoint and key come from
// the environment.
const (
	whisperDeployment = "whisper"
	azureAPIVersion   = "2024-06-01"

	// Retries after the first attempt, applied to connection resets only.
	maxTranscribeRetries = 3
)

type TranscriptionService interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

type whisperService struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewTranscriptionService(cfg *config.Config) TranscriptionService {
	if cfg.Azure.Endpoint == "" || cfg.Azure.APIKey == "" {
		log.Warn().Msg("Azure OpenAI credentials are not set. Transcription requests will fail.")
	}
	return &whisperService{
		endpoint: strings.TrimRight(cfg.Azure.Endpoint, "/"),
		apiKey:   cfg.Azure.APIKey,
		client:   http.DefaultClient,
	}
}

type whisperResponse struct {
	Text string `json:"text"`
}

// Transcribe submits the audio file to the Azure OpenAI transcription
// deployment and returns the transcript. Connection resets are retried
// sequentially up to maxTranscribeRetries extra attempts with no backoff;
// every other error class propagates immediately.
func (s *whisperService) Transcribe(ctx context.Context, audioPath string) (string, error) {
	for attempt := 0; ; attempt++ {
		text, err := s.transcribeOnce(ctx, audioPath)
		if err == nil {
			return text, nil
		}
		if !isConnReset(err) || attempt == maxTranscribeRetries {
			return "", fmt.Errorf("%w: %v", apperrors.ErrTranscription, err)
		}
		log.Warn().Err(err).Int("attempt", attempt+1).Msg("Connection reset during transcription, retrying")
	}
}

func (s *whisperService) transcribeOnce(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(fw, f); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/audio/transcriptions?api-version=%s",
		s.endpoint, whisperDeployment, azureAPIVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("api-key", s.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("azure openai http %d: %s", resp.StatusCode, string(b))
	}

	var parsed whisperResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode transcription response: %w", err)
	}
	return parsed.Text, nil
}

func isConnReset(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	return strings.Contains(err.Error(), "connection reset by peer")
}

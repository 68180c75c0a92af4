package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

type ElevenLabsClient struct {
	apiKey  string
	voiceID string
	httpCli *http.Client
}

func NewElevenLabsClient(apiKey, voiceID string) (*ElevenLabsClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ELEVENLABS_API_KEY not set")
	}

	return &ElevenLabsClient{
		apiKey:  apiKey,
		voiceID: voiceID,
		httpCli: http.DefaultClient,
	}, nil
}

// TEXT → SPEECH
func (c *ElevenLabsClient) Synthesize(ctx context.Context, ttsCode, text, outPath string) error {
	url := fmt.Sprintf("https://api.elevenlabs.io/v1/text-to-speech/%s", c.voiceID)

	payload, err := json.Marshal(map[string]string{
		"text":          text,
		"model_id":      "eleven_turbo_v2_5",
		"language_code": elevenLangCode(ttsCode),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("elevenlabs error: %s", string(b))
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

// у ElevenLabs свои представления о кодах
func elevenLangCode(code string) string {
	switch code {
	case "iw":
		return "he"
	case "zh-CN":
		return "zh"
	}
	return code
}

package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"time"
)

// DefaultZeroShotURL is the hosted inference endpoint of the zero-shot
// entailment model.
const DefaultZeroShotURL = "https://router.huggingface.co/hf-inference/models/facebook/bart-large-mnli"

// hypothesisTemplate is the fixed NLI template; {} is replaced server-side
// with each candidate label.
const hypothesisTemplate = "The user needs {}."

// minConfidence gates the primary result: anything scoring below it is
// never surfaced and the pipeline moves to the fallback classifier.
const minConfidence = 50.0

// ZeroShot scores a query against candidate labels with a remote zero-shot
// multi-label classifier. Safe for concurrent use.
type ZeroShot struct {
	httpClient *http.Client
	url        string
	token      string
}

func NewZeroShot(token, url string, timeout time.Duration) *ZeroShot {
	if url == "" {
		url = DefaultZeroShotURL
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &ZeroShot{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
		token:      token,
	}
}

type zeroShotRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters zeroShotParameters `json:"parameters"`
}

type zeroShotParameters struct {
	CandidateLabels    []string `json:"candidate_labels"`
	HypothesisTemplate string   `json:"hypothesis_template"`
}

type zeroShotResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// Classify scores query against labels and returns the top label with a
// 0-100 confidence. Results under the confidence gate come back as
// GeneralLabel with the computed confidence; transport and protocol
// failures come back as the canonical unknown result. Never returns an
// error to the caller.
func (z *ZeroShot) Classify(ctx context.Context, query string, labels []string) Result {
	log.Printf("classify: scoring query %q against %d labels", query, len(labels))

	res, err := z.score(ctx, query, labels)
	if err != nil {
		log.Printf("classify: zero-shot call failed: %v", err)
		return Unknown()
	}
	if len(res.Labels) == 0 || len(res.Scores) == 0 {
		log.Printf("classify: zero-shot response missing labels")
		return Unknown()
	}

	confidence := math.Round(res.Scores[0]*100*100) / 100
	if confidence < minConfidence {
		return Result{Label: GeneralLabel, Confidence: confidence, Source: SourcePrimary}
	}
	return Result{Label: res.Labels[0], Confidence: confidence, Source: SourcePrimary}
}

func (z *ZeroShot) score(ctx context.Context, query string, labels []string) (*zeroShotResponse, error) {
	payload, err := json.Marshal(zeroShotRequest{
		Inputs: query,
		Parameters: zeroShotParameters{
			CandidateLabels:    labels,
			HypothesisTemplate: hypothesisTemplate,
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, z.url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+z.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := z.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("zero-shot endpoint returned status %d", resp.StatusCode)
	}

	var out zeroShotResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode zero-shot response: %w", err)
	}
	return &out, nil
}

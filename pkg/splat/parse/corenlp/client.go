// Package corenlp implements the tree parser contract against a Stanford
// CoreNLP server.
package corenlp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const properties = `{"annotators":"tokenize,ssplit,pos,parse","outputFormat":"json","ssplit.isOneSentence":"true"}`

// Client calls a CoreNLP server's annotate endpoint, one request per utterance.
type Client struct {
	BaseURL string

	HTTPClient *http.Client
	Log        *logrus.Entry
}

type annotateResponse struct {
	Sentences []struct {
		Parse string `json:"parse"`
	} `json:"sentences"`
}

// ParseTrees returns one bracketed tree per utterance. An utterance the
// server fails on yields an empty tree; a canceled context aborts the batch.
func (c *Client) ParseTrees(ctx context.Context, utterances []string) ([]string, error) {
	if c.BaseURL == "" {
		return nil, fmt.Errorf("corenlp: base URL required")
	}
	out := make([]string, len(utterances))
	for i, utt := range utterances {
		if strings.TrimSpace(utt) == "" {
			continue
		}
		tree, err := c.parse(ctx, utt)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger().WithError(err).WithField("utterance", i).Warn("parse failed")
			continue
		}
		out[i] = tree
	}
	return out, nil
}

func (c *Client) parse(ctx context.Context, text string) (string, error) {
	endpoint := strings.TrimRight(c.BaseURL, "/") + "/?properties=" + url.QueryEscape(properties)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(text))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("corenlp: status %d", resp.StatusCode)
	}

	var payload annotateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if len(payload.Sentences) == 0 {
		return "", fmt.Errorf("corenlp: no sentences in response")
	}
	return strings.Join(strings.Fields(payload.Sentences[0].Parse), " "), nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 30 * time.Second}
}

func (c *Client) logger() *logrus.Entry {
	if c.Log != nil {
		return c.Log
	}
	return logrus.WithField("component", "corenlp")
}

package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

type VercelAPI struct {
	client  *http.Client
	baseURL string
}

func NewVercelAPI(client *http.Client, baseURL string) *VercelAPI {
	return &VercelAPI{client: client, baseURL: baseURL}
}

func (v *VercelAPI) RandomWord(ctx context.Context) (string, error) {
	var words []string
	if err := getJSON(ctx, v.client, v.baseURL+"/api?words=1", &words); err != nil {
		return "", fmt.Errorf("failed to get random word: %w", err)
	}

	if len(words) == 0 || words[0] == "" {
		return "", errors.New("failed to get random word: empty response")
	}

	return words[0], nil
}

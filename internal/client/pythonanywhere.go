package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/models"
)

type PythonAnyWhereAPI struct {
	client  *http.Client
	baseURL string
	source  string
	target  string
}

func NewPythonAnyWhereAPI(client *http.Client, baseURL, source, target string) *PythonAnyWhereAPI {
	return &PythonAnyWhereAPI{client: client, baseURL: baseURL, source: source, target: target}
}

func (p *PythonAnyWhereAPI) DictionaryData(ctx context.Context, word string) (models.TranslationResponse, error) {
	q := url.Values{}
	q.Set("sl", p.source)
	q.Set("dl", p.target)
	q.Set("text", word)

	var result models.TranslationResponse
	if err := getJSON(ctx, p.client, p.baseURL+"/translate?"+q.Encode(), &result); err != nil {
		return models.TranslationResponse{}, fmt.Errorf("failed to look up word %q: %w", word, err)
	}

	return result, nil
}

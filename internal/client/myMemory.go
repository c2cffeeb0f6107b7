package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/models"
)

type MyMemoryAPI struct {
	client  *http.Client
	baseURL string
	source  string
	target  string
}

func NewMyMemoryAPI(client *http.Client, baseURL, source, target string) *MyMemoryAPI {
	return &MyMemoryAPI{client: client, baseURL: baseURL, source: source, target: target}
}

func (m *MyMemoryAPI) Translate(ctx context.Context, text string) (models.TranslationResult, error) {
	endpoint := fmt.Sprintf("%s/get?q=%s&langpair=%s", m.baseURL,
		url.QueryEscape(text), url.QueryEscape(m.source+"|"+m.target))

	var data models.MyMemoryResponse
	if err := getJSON(ctx, m.client, endpoint, &data); err != nil {
		return models.TranslationResult{}, fmt.Errorf("failed to translate %q: %w", text, err)
	}

	if data.ResponseBody.ResponseStatus != http.StatusOK {
		return models.TranslationResult{
			Error: data.ResponseBody.ResponseDetails,
		}, nil
	}

	var alternatives []string
	for _, m := range data.Matches {
		if m.Translation != data.ResponseBody.TranslatedText {
			alternatives = append(alternatives, m.Translation)
		}
	}

	return models.TranslationResult{
		Text:         data.ResponseBody.TranslatedText,
		Match:        data.ResponseBody.Match,
		Source:       m.source,
		Target:       m.target,
		Reliable:     data.ResponseBody.Match >= 0.8,
		Alternatives: alternatives,
	}, nil
}

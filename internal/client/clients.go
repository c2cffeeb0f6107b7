package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/config"
)

const (
	myMemoryURL       = "https://api.mymemory.translated.net"
	pythonAnyWhereURL = "https://ftapi.pythonanywhere.com"
	vercelURL         = "https://random-word-api.vercel.app"
)

type Clients struct {
	*MyMemoryAPI
	*PythonAnyWhereAPI
	*VercelAPI
}

func InitClients(cfg config.ClientsConfig) Clients {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	return Clients{
		MyMemoryAPI:       NewMyMemoryAPI(httpClient, myMemoryURL, cfg.SourceLang, cfg.TargetLang),
		PythonAnyWhereAPI: NewPythonAnyWhereAPI(httpClient, pythonAnyWhereURL, cfg.SourceLang, cfg.TargetLang),
		VercelAPI:         NewVercelAPI(httpClient, vercelURL),
	}
}

func getJSON(ctx context.Context, client *http.Client, url string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL.Host)
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}

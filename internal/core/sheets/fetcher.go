package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fetcher retrieves the raw CSV text of the published sheet. The pipeline
// treats a fetch failure as "no data this cycle"; it is the only error the
// pipeline ever surfaces.
type Fetcher interface {
	FetchCSV(ctx context.Context) (string, error)
}

type httpFetcher struct {
	client *http.Client
	url    string
}

// NewHTTPFetcher cria um Fetcher para a URL de exportação CSV publicada da
// planilha. A exportação é pública, sem autenticação e sem paginação: cada
// chamada baixa a aba inteira.
func NewHTTPFetcher(url string) Fetcher {
	return &httpFetcher{
		client: &http.Client{Timeout: 30 * time.Second},
		url:    url,
	}
}

func (f *httpFetcher) FetchCSV(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", fmt.Errorf("falha ao montar requisição da planilha: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("falha ao buscar dados da planilha: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("falha ao buscar dados da planilha: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("falha ao ler resposta da planilha: %w", err)
	}

	return string(body), nil
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/guttosm/flashe-service/internal/domain/model"
	"github.com/guttosm/flashe-service/internal/repository"
)

// Source names reported by the built-in sources.
const (
	SourceHTTP  = "http"
	SourceFile  = "file"
	SourceMongo = "mongodb"
)

// maxCatalogBytes caps how much of a catalog document is read.
const maxCatalogBytes = 1 << 20

type documentFormat int

const (
	formatJSON documentFormat = iota
	formatYAML
)

func formatForPath(p string) documentFormat {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

func decodeCatalogDocument(data []byte, format documentFormat) (model.CatalogDocument, error) {
	var doc model.CatalogDocument
	var err error
	switch format {
	case formatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return model.CatalogDocument{}, fmt.Errorf("decode catalog: %w", err)
	}
	return doc, nil
}

// HTTPCatalogSource fetches the catalog document with a GET request.
type HTTPCatalogSource struct {
	url    string
	client *http.Client
}

// NewHTTPCatalogSource creates a source for rawURL. A nil client uses http.DefaultClient.
func NewHTTPCatalogSource(rawURL string, client *http.Client) *HTTPCatalogSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPCatalogSource{url: rawURL, client: client}
}

// Name implements CatalogSource.
func (s *HTTPCatalogSource) Name() string { return SourceHTTP }

// Fetch implements CatalogSource. Any status outside 2xx is a failure.
func (s *HTTPCatalogSource) Fetch(ctx context.Context) (model.CatalogDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return model.CatalogDocument{}, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		return model.CatalogDocument{}, fmt.Errorf("fetch catalog: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.CatalogDocument{}, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBytes))
	if err != nil {
		return model.CatalogDocument{}, fmt.Errorf("read catalog: %w", err)
	}

	format := formatJSON
	if u, err := url.Parse(s.url); err == nil {
		format = formatForPath(u.Path)
	}
	if ct := resp.Header.Get("Content-Type"); strings.Contains(ct, "yaml") {
		format = formatYAML
	}
	return decodeCatalogDocument(data, format)
}

// FileCatalogSource reads the catalog document from disk. Files ending in
// .yaml or .yml are read as YAML, anything else as JSON.
type FileCatalogSource struct {
	path string
}

// NewFileCatalogSource creates a source for path.
func NewFileCatalogSource(path string) *FileCatalogSource {
	return &FileCatalogSource{path: path}
}

// Name implements CatalogSource.
func (s *FileCatalogSource) Name() string { return SourceFile }

// Fetch implements CatalogSource.
func (s *FileCatalogSource) Fetch(ctx context.Context) (model.CatalogDocument, error) {
	if err := ctx.Err(); err != nil {
		return model.CatalogDocument{}, err
	}

	f, err := os.Open(filepath.Clean(s.path))
	if err != nil {
		return model.CatalogDocument{}, fmt.Errorf("open catalog: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(f, maxCatalogBytes))
	if err != nil {
		return model.CatalogDocument{}, fmt.Errorf("read catalog: %w", err)
	}
	return decodeCatalogDocument(data, formatForPath(s.path))
}

// MongoCatalogSource reads the active catalog snapshot.
type MongoCatalogSource struct {
	repo repository.CatalogRepositoryInterface
}

// NewMongoCatalogSource creates a source backed by repo.
func NewMongoCatalogSource(repo repository.CatalogRepositoryInterface) *MongoCatalogSource {
	return &MongoCatalogSource{repo: repo}
}

// Name implements CatalogSource.
func (s *MongoCatalogSource) Name() string { return SourceMongo }

// Fetch implements CatalogSource.
func (s *MongoCatalogSource) Fetch(ctx context.Context) (model.CatalogDocument, error) {
	snapshot, err := s.repo.GetActive(ctx)
	if err != nil {
		return model.CatalogDocument{}, fmt.Errorf("load catalog snapshot: %w", err)
	}
	if snapshot == nil {
		return model.CatalogDocument{}, ErrNoActiveCatalog
	}
	return snapshot.Document(), nil
}

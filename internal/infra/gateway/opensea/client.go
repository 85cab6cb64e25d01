// Package opensea resolves NFT names and preview images through the OpenSea
// API.
package opensea

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gabapcia/txhistory/internal/nftmeta"
	"github.com/gabapcia/txhistory/internal/txrecord"
)

const (
	DefaultBaseURL = "https://api.opensea.io"

	HeaderAPIKey = "X-API-KEY"
)

// chains maps the supported blockchains to OpenSea chain slugs.
var chains = map[txrecord.BlockchainType]string{
	txrecord.BlockchainEthereum: "ethereum",
	txrecord.BlockchainPolygon:  "matic",
}

type nftResponse struct {
	NFT struct {
		Identifier      string `json:"identifier"`
		Name            string `json:"name"`
		ImageURL        string `json:"image_url"`
		DisplayImageURL string `json:"display_image_url"`
	} `json:"nft"`
}

type client struct {
	httpClient *http.Client
	baseURL    string
}

var _ nftmeta.Provider = (*client)(nil)

// NewClient returns a metadata provider calling baseURL, or DefaultBaseURL
// when empty. The API key is expected to be set by httpClient.
func NewClient(httpClient *http.Client, baseURL string) *client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (c *client) NftMetadata(ctx context.Context, id txrecord.NftUID) (txrecord.NftMetadata, error) {
	chain, ok := chains[id.Blockchain]
	if !ok {
		return txrecord.NftMetadata{}, nftmeta.ErrMetadataNotFound
	}

	reqURL := fmt.Sprintf(
		"%s/api/v2/chain/%s/contract/%s/nfts/%s",
		c.baseURL, chain, url.PathEscape(id.Contract), url.PathEscape(id.TokenID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return txrecord.NftMetadata{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return txrecord.NftMetadata{}, fmt.Errorf("get nft %s: %w", id, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return txrecord.NftMetadata{}, nftmeta.ErrMetadataNotFound
	case res.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return txrecord.NftMetadata{}, fmt.Errorf("unexpected status code %d: %s", res.StatusCode, string(body))
	}

	var payload nftResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return txrecord.NftMetadata{}, fmt.Errorf("decode nft %s: %w", id, err)
	}

	meta := txrecord.NftMetadata{
		Name:            payload.NFT.Name,
		PreviewImageURL: payload.NFT.DisplayImageURL,
	}
	if meta.PreviewImageURL == "" {
		meta.PreviewImageURL = payload.NFT.ImageURL
	}

	if meta.Name == "" && meta.PreviewImageURL == "" {
		return txrecord.NftMetadata{}, nftmeta.ErrMetadataNotFound
	}

	return meta, nil
}

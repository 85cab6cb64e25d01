package nftmeta

import (
	"context"
	"errors"

	"github.com/gabapcia/txhistory/internal/txrecord"
)

// ErrMetadataNotFound is returned by providers that do not know a token.
var ErrMetadataNotFound = errors.New("nft metadata not found")

// Storage persists resolved NFT metadata.
type Storage interface {
	SaveNftMetadata(ctx context.Context, metadata map[txrecord.NftUID]txrecord.NftMetadata) error

	// LoadNftMetadata returns the stored entries of ids. Unknown ids are
	// absent from the result.
	LoadNftMetadata(ctx context.Context, ids []txrecord.NftUID) (map[txrecord.NftUID]txrecord.NftMetadata, error)
}

// Provider resolves the metadata of a single token over the network.
type Provider interface {
	NftMetadata(ctx context.Context, id txrecord.NftUID) (txrecord.NftMetadata, error)
}

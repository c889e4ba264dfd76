// export_test.go exports private constructors for white-box testing.
package fetch

import (
	"net/http"

	"github.com/bytes00000111/nativelink/internal/core/ports"
)

// NewFetcherWithClient exports newFetcherWithClient for testing.
func NewFetcherWithClient(store ports.BlobStore, logger ports.Logger, client *http.Client) *Fetcher {
	return newFetcherWithClient(store, logger, client)
}

package subspedia

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/angelospk/subspedia-go/internal/decode"
)

// errUninitializedRequest is returned for a zero Request built without a constructor.
var errUninitializedRequest = errors.New("request was not built with a New*Request constructor")

// result is the single value handed from the fetch goroutine back to Get.
type result[T any] struct {
	records []T
	err     error
}

// Get performs req against the API and returns the decoded records in server order.
// A nil client uses DefaultClient.
//
// Errors are always *FetchError: KindHTTP for transport failures and non-2xx
// statuses, KindJSON when the body is not an array of the declared record.
func Get[T any](ctx context.Context, c *Client, req Request[T]) ([]T, error) {
	if c == nil {
		c = DefaultClient()
	}
	if req.kind == 0 {
		return nil, httpError(errUninitializedRequest)
	}

	rawURL := req.urlFor(c.baseURL)
	log := c.logger.WithFields(logrus.Fields{
		"request": req.kind.String(),
		"url":     rawURL,
	})
	log.Debug("Fetching")

	done := make(chan result[T], 1)
	go func() {
		records, err := fetch[T](ctx, c, rawURL)
		done <- result[T]{records: records, err: err}
	}()
	res := <-done

	if res.err != nil {
		log.WithError(res.err).Debug("Fetch failed")
		return nil, res.err
	}
	log.WithField("count", len(res.records)).Debug("Fetch completed")
	return res.records, nil
}

// fetch does one GET of rawURL and decodes the buffered body as a JSON array of T.
func fetch[T any](ctx context.Context, c *Client, rawURL string) ([]T, error) {
	body, err := c.httpClient.Get(ctx, rawURL)
	if err != nil {
		return nil, httpError(err)
	}

	records, err := decode.List[T](body)
	if err != nil {
		return nil, jsonError(err)
	}
	return records, nil
}

package application

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// AssetChecker verifies that externally hosted assets (covers, logos,
// flight images) answer before a document referencing them is stored. The
// breaker keeps a flapping asset host from slowing every create down.
type AssetChecker struct {
	client *http.Client
	cb     *gobreaker.CircuitBreaker
	logger *logrus.Logger
}

func NewAssetChecker(logger *logrus.Logger) *AssetChecker {
	return &AssetChecker{
		client: &http.Client{Timeout: 5 * time.Second},
		cb:     CircuitBreaker("assetChecker"),
		logger: logger,
	}
}

func (c *AssetChecker) CheckURL(ctx context.Context, rawURL string) error {
	_, breakerErr := c.cb.Execute(func() (interface{}, error) {
		request, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
		if err != nil {
			return nil, err
		}
		response, err := c.client.Do(request)
		if err != nil {
			return nil, err
		}
		defer response.Body.Close()

		if response.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("asset %s answered %d", rawURL, response.StatusCode)
		}
		return nil, nil
	})
	if breakerErr != nil {
		c.logger.Errorln(breakerErr)
		return &ValidationError{Message: fmt.Sprintf("asset not reachable: %s", rawURL)}
	}
	return nil
}

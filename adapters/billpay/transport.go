package billpay

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kevin07696/billpay-client/domain/ports"
	pkgerrors "github.com/kevin07696/billpay-client/pkg/errors"
)

const contentTypeXML = "text/xml"

// transport posts XML request bodies to the gateway and returns the raw
// response body. One synchronous exchange per call, no internal retry;
// I/O failures and non-200 statuses surface as TransportError before any
// decoding happens.
type transport struct {
	httpClient ports.HTTPClient
	logger     ports.Logger
}

func newTransport(httpClient ports.HTTPClient, logger ports.Logger) *transport {
	return &transport{
		httpClient: httpClient,
		logger:     logger,
	}
}

func (t *transport) send(ctx context.Context, endpoint, body string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body))
	if err != nil {
		return nil, pkgerrors.WrapTransportError(err)
	}
	httpReq.Header.Set("Content-Type", contentTypeXML)

	startTime := time.Now()
	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		t.logger.Error("Failed to send gateway request",
			ports.Err(err),
			ports.String("endpoint", endpoint),
		)
		return nil, pkgerrors.WrapTransportError(err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		t.logger.Error("Failed to read gateway response", ports.Err(err))
		return nil, pkgerrors.WrapTransportError(err)
	}

	t.logger.Debug("Received gateway response",
		ports.Int("status_code", httpResp.StatusCode),
		ports.Int("body_length", len(respBody)),
		ports.Field{Key: "elapsed", Value: time.Since(startTime)},
	)

	if httpResp.StatusCode != http.StatusOK {
		return nil, pkgerrors.NewTransportError(httpResp.StatusCode)
	}

	return respBody, nil
}

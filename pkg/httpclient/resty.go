package httpclient

import (
	"context"
	"time"

	"stockwise/pkg/logger"

	"github.com/go-resty/resty/v2"
)

type RestyClient struct {
	client *resty.Client
}

// New builds a resty-backed client. Every response is logged at debug level.
// No retries are configured.
func New(log *logger.Logger, baseURL string, timeout time.Duration) HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")


	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.DebugContext(resp.Request.Context(), "http response",
			logger.StringField("method", resp.Request.Method),
			logger.StringField("url", resp.Request.URL),
			logger.IntField("status_code", resp.StatusCode()),
			logger.Field("duration", resp.Time()),
		)
		return nil
	})

	return &RestyClient{client: client}
}

// GET request with optional query params
func (rc *RestyClient) Get(ctx context.Context, endpoint string, queryParams map[string]string, headers map[string]string, result interface{}) (*BaseResponse, error) {
	req := rc.client.R().SetContext(ctx)

	if result != nil {
		req.SetResult(result)
	}

	if queryParams != nil {
		req.SetQueryParams(queryParams)
	}

	if headers != nil {
		req.SetHeaders(headers)
	}

	resp, err := req.Get(endpoint)
	if err != nil {
		return nil, err
	}
	return toBaseResponse(resp), nil
}

func toBaseResponse(resp *resty.Response) *BaseResponse {
	return &BaseResponse{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
		Headers:    resp.Header(),
	}
}

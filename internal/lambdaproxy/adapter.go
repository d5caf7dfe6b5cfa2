// Package lambdaproxy runs an http.Handler behind an API Gateway HTTP API
// (payload format 2.0).
package lambdaproxy

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
)

type Adapter struct {
	handler http.Handler
}

func New(handler http.Handler) *Adapter {
	return &Adapter{handler: handler}
}

// Handle converts the event into an *http.Request, serves it and converts
// the recorded response back.
func (a *Adapter) Handle(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	req, err := toHTTPRequest(ctx, event)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	return toEventResponse(rec), nil
}

func toHTTPRequest(ctx context.Context, event events.APIGatewayV2HTTPRequest) (*http.Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("decoding request body: %w", err)
		}
		body = decoded
	}

	path := event.RawPath
	if path == "" {
		path = "/"
	}
	u := &url.URL{Path: path, RawQuery: event.RawQueryString}

	method := event.RequestContext.HTTP.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	for k, v := range event.Headers {
		req.Header.Set(k, v)
	}
	if len(event.Cookies) > 0 {
		req.Header.Set("Cookie", strings.Join(event.Cookies, "; "))
	}
	req.Host = req.Header.Get("Host")
	if req.Host == "" {
		req.Host = event.RequestContext.DomainName
	}
	if ip := event.RequestContext.HTTP.SourceIP; ip != "" {
		req.RemoteAddr = ip
	}
	req.ContentLength = int64(len(body))

	return req, nil
}

func toEventResponse(rec *httptest.ResponseRecorder) events.APIGatewayV2HTTPResponse {
	result := rec.Result()
	defer result.Body.Close()

	headers := make(map[string]string, len(result.Header))
	for k, v := range result.Header {
		if k == "Set-Cookie" {
			continue
		}
		headers[k] = strings.Join(v, ",")
	}

	resp := events.APIGatewayV2HTTPResponse{
		StatusCode: result.StatusCode,
		Headers:    headers,
		Cookies:    result.Header.Values("Set-Cookie"),
	}

	body := rec.Body.Bytes()
	if isText(result.Header.Get("Content-Type"), body) {
		resp.Body = string(body)
	} else {
		resp.Body = base64.StdEncoding.EncodeToString(body)
		resp.IsBase64Encoded = true
	}

	return resp
}

func isText(contentType string, body []byte) bool {
	ct := strings.ToLower(contentType)
	switch {
	case strings.HasPrefix(ct, "text/"),
		strings.Contains(ct, "json"),
		strings.Contains(ct, "javascript"),
		strings.Contains(ct, "xml"):
		return utf8.Valid(body)
	case ct == "":
		return utf8.Valid(body)
	}
	return false
}

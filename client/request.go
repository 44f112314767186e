package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/restbase/endpoint"
	"github.com/kbukum/restbase/errors"
	"github.com/kbukum/restbase/logger"
)

// hasBody reports whether a JSON body is sent for method.
func hasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// send fills the template, builds the request and performs one round trip.
// Transport errors are returned as the transport produced them.
func (c *Client) send(ctx context.Context, name string, tmpl endpoint.Template, cl *call) (*http.Response, error) {
	callID := uuid.NewString()
	method := tmpl.HTTPMethod()
	ctx, span := c.tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("restbase.endpoint", name),
			attribute.String("restbase.call_id", callID),
			attribute.String("http.request.method", method),
			attribute.String("url.template", tmpl.Path),
		),
	)
	defer span.End()

	log := c.log.WithContext(ctx).WithFields(logger.Fields(
		logger.FieldCallID, callID,
		logger.FieldEndpoint, name,
	))
	if log.DebugEnabled() {
		log.Debug("endpoint requested", logger.Fields(
			"args", cl.args,
			"params", cl.params.Encode(),
			"body_fields", len(cl.body),
		))
	}

	path, err := tmpl.Fill(cl.args...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Debug("path template mismatch", logger.Fields(logger.FieldError, err.Error()))
		return nil, err
	}

	req, err := c.buildRequest(ctx, method, path, cl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("url.full", req.URL.String()))

	log.Debug("sending request", logger.Fields(
		logger.FieldMethod, method,
		logger.FieldPath, tmpl.Path,
		logger.FieldURL, req.URL.String(),
	))

	start := time.Now()
	resp, err := c.doer.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.metrics.RecordCall(ctx, name, method, 0, elapsed, err)
		log.Debug("request failed", logger.MergeWithError(logger.DurationFields(name, elapsed), err))
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, resp.Status)
	}
	c.metrics.RecordCall(ctx, name, method, resp.StatusCode, elapsed, nil)
	log.Debug("response received", logger.Fields(
		logger.FieldStatus, resp.StatusCode,
		logger.FieldDuration, elapsed.Milliseconds(),
	))
	return resp, nil
}

// buildRequest composes URL, query, body, headers and credentials from the
// current client state.
func (c *Client) buildRequest(ctx context.Context, method, path string, cl *call) (*http.Request, error) {
	s := c.snapshot()

	rawURL, err := s.urls.Resolve(s.env, path)
	if err != nil {
		return nil, err
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.InvalidInput("url", err.Error()).WithCause(err)
	}
	if len(cl.params) > 0 {
		q := u.Query()
		for k, vs := range cl.params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	var body io.Reader
	if hasBody(method) && len(cl.body) > 0 {
		data, err := json.Marshal(cl.body)
		if err != nil {
			return nil, errors.InvalidInput("body", err.Error()).WithCause(err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, errors.InvalidInput("request", err.Error()).WithCause(err)
	}

	headers := s.headers
	if cl.headers != nil {
		headers = cl.headers
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if s.auth != nil {
		if err := s.auth.Apply(req); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

// Package api implements the HTTP parse API.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/openchoreo/klap/internal/logging"
	"github.com/openchoreo/klap/internal/server/metrics"
	"github.com/openchoreo/klap/pkg/klap"
)

// MaxBodyBytes bounds the size of a request body.
const MaxBodyBytes = 1 << 20

var errUnsupportedFormat = errors.New("unsupported format")

// Handler serves the parse API.
type Handler struct {
	validate *validator.Validate
	metrics  *metrics.Metrics
}

// NewHandler creates a Handler recording into m.
func NewHandler(m *metrics.Metrics) *Handler {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Handler{validate: v, metrics: m}
}

// Parse handles POST /api/v1/parse.
func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	var req ParseRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.metrics.ObserveParse("unknown", metrics.ResultBadRequest, 0)
		writeError(w, r, http.StatusBadRequest, "invalid request body: "+err.Error(), CodeBadRequest, nil)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.metrics.ObserveParse(metricKind(req.Kind), metrics.ResultBadRequest, 0)
		writeError(w, r, http.StatusBadRequest, validationMessage(err), CodeBadRequest, nil)
		return
	}

	start := time.Now()
	data, err := parse(req)
	elapsed := time.Since(start)

	var perr *klap.ParseError
	switch {
	case err == nil:
		h.metrics.ObserveParse(req.Kind, metrics.ResultOK, elapsed)
		log.Debug("Parsed input", "kind", req.Kind, "format", req.Format)
		writeJSON(w, r, http.StatusOK, Response{Success: true, Data: data})
	case errors.As(err, &perr):
		h.metrics.ObserveParse(req.Kind, metrics.ResultInvalid, elapsed)
		log.Debug("Rejected input", "kind", req.Kind, "error", err)
		writeError(w, r, http.StatusUnprocessableEntity, err.Error(), CodeInvalidInput, &ErrorDetails{
			Offset:   perr.Offset,
			Line:     perr.Line,
			Column:   perr.Column,
			Expected: perr.Expected,
		})
	default:
		h.metrics.ObserveParse(req.Kind, metrics.ResultBadRequest, 0)
		writeError(w, r, http.StatusBadRequest, err.Error(), CodeBadRequest, nil)
	}
}

func parse(req ParseRequest) (any, error) {
	switch req.Kind {
	case KindKey:
		if req.Format != "" {
			return nil, formatError(req)
		}
		k, err := klap.ParseKey(req.Input)
		if err != nil {
			return nil, err
		}
		return newKeyResult(k), nil
	case KindValue:
		if req.Format != "" {
			return nil, formatError(req)
		}
		v, err := klap.ParseLabelValue(req.Input)
		if err != nil {
			return nil, err
		}
		return ValueResult{Value: v}, nil
	case KindLabel:
		switch req.Format {
		case "", FormatEq:
			return klap.ParseLabel(req.Input)
		case FormatColon:
			return klap.ParseLabelColon(req.Input)
		}
		return nil, formatError(req)
	case KindLabels:
		if req.Format == FormatEq || req.Format == FormatColon {
			return nil, formatError(req)
		}
		f, err := klap.ParseListFormat(req.Format)
		if err != nil {
			return nil, err
		}
		ls, err := f.Parse(req.Input)
		if err != nil {
			return nil, err
		}
		return LabelsResult{Labels: ls, Map: ls.Map()}, nil
	case KindAnnotation:
		if req.Format != "" {
			return nil, formatError(req)
		}
		return klap.ParseAnnotation(req.Input)
	}
	return nil, fmt.Errorf("unknown kind %q", req.Kind)
}

func formatError(req ParseRequest) error {
	return fmt.Errorf("%w %q for kind %q", errUnsupportedFormat, req.Format, req.Kind)
}

func metricKind(kind string) string {
	switch kind {
	case KindKey, KindValue, KindLabel, KindLabels, KindAnnotation:
		return kind
	}
	return "unknown"
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", ")))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.FromContext(r.Context()).Error("Failed to write response", "status", status, "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message, code string, details *ErrorDetails) {
	writeJSON(w, r, status, Response{Error: message, Code: code, Details: details})
}

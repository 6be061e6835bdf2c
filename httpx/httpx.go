/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package httpx renders *hexffi.Error values as HTTP responses.
//
// The body is the google.rpc.Status built by package adapter, encoded with
// protojson, so HTTP and gRPC clients see the same details.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"dirpx.dev/hexffi"
	"dirpx.dev/hexffi/adapter"
	"dirpx.dev/hexffi/apis"
	"dirpx.dev/hexffi/hexparse"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"
)

// Meta carries request context the HTTP layer adds on top of the error.
// All fields are optional.
type Meta struct {
	// RequestID is echoed as errdetails.RequestInfo.
	RequestID string

	// Fields names the request fields that held the bad input. Each one
	// becomes an errdetails.BadRequest field violation.
	Fields []string
}

// Writer turns a *hexffi.Error into an HTTP response using Mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write writes the error with the status resolved by the Mapper. A nil err
// writes nothing.
//
// No redaction is performed: the trace, if captured, is part of the body.
func (w Writer) Write(rw http.ResponseWriter, err *hexffi.Error, meta Meta) {
	if err == nil {
		return
	}
	st := w.Mapper.Status(err.Code(), err.Reason())

	pb, perr := adapter.ToStatusProto(err, st)
	if perr != nil {
		http.Error(rw, err.Error(), st.HTTP)
		return
	}
	if meta.RequestID != "" {
		if a, aerr := anypb.New(&errdetails.RequestInfo{RequestId: meta.RequestID}); aerr == nil {
			pb.Details = append(pb.Details, a)
		}
	}
	if len(meta.Fields) > 0 {
		br := &errdetails.BadRequest{}
		for _, f := range meta.Fields {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       f,
				Description: err.Message(),
			})
		}
		if a, aerr := anypb.New(br); aerr == nil {
			pb.Details = append(pb.Details, a)
		}
	}

	b, merr := protojson.MarshalOptions{UseProtoNames: false}.Marshal(pb)
	if merr != nil {
		http.Error(rw, err.Error(), st.HTTP)
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(st.HTTP)
	_, _ = rw.Write(b)
}

// Result is the success body of ParseHandler.
type Result struct {
	Value uint64 `json:"value"`
	Width int    `json:"width"`
}

// ParseHandler serves GET ?text=<hex> and parses text into an unsigned
// integer of bitSize bits (8, 16, 32 or 64). Failures go through w.
func ParseHandler(w Writer, bitSize int) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if !q.Has("text") {
			w.Write(rw, hexffi.NullPointer(hexffi.WithoutTrace()), Meta{
				RequestID: r.Header.Get("X-Request-Id"),
				Fields:    []string{"text"},
			})
			return
		}
		v, err := hexparse.ParseBytes([]byte(q.Get("text")), bitSize)
		if err != nil {
			var he *hexffi.Error
			if !errors.As(err, &he) {
				http.Error(rw, err.Error(), http.StatusInternalServerError)
				return
			}
			w.Write(rw, he, Meta{RequestID: r.Header.Get("X-Request-Id"), Fields: []string{"text"}})
			return
		}
		rw.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(rw).Encode(Result{Value: v, Width: bitSize})
	})
}

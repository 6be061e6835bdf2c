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

// Package grpcx maps *hexffi.Error values to and from gRPC statuses.
package grpcx

import (
	"context"
	"errors"

	"dirpx.dev/hexffi"
	"dirpx.dev/hexffi/adapter"
	"dirpx.dev/hexffi/apis"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"
)

// Extras holds optional request metadata attached next to the error
// details. All fields are optional.
type Extras struct {
	// RequestID is a correlation token (request ID, idempotency key).
	RequestID string

	// ServingData is opaque server-side debugging data.
	ServingData string

	// Links are human-facing links to documentation.
	Links []*errdetails.Help_Link
}

// MetaFn extracts Extras from the request context and the error.
type MetaFn func(ctx context.Context, e *hexffi.Error) Extras

// ToStatus converts e into a gRPC status using m for the code. The details
// are those of adapter.ToStatusProto followed by any extras. A nil e yields
// an OK status.
func ToStatus(e *hexffi.Error, m apis.Mapper, ex Extras) *gstatus.Status {
	if e == nil {
		return gstatus.New(gcodes.OK, "")
	}
	st := m.Status(e.Code(), e.Reason())
	pb, err := adapter.ToStatusProto(e, st)
	if err != nil {
		return gstatus.New(st.GRPC, e.Error())
	}
	if ex.RequestID != "" || ex.ServingData != "" {
		if a, err := anypb.New(&errdetails.RequestInfo{RequestId: ex.RequestID, ServingData: ex.ServingData}); err == nil {
			pb.Details = append(pb.Details, a)
		}
	}
	if len(ex.Links) > 0 {
		if a, err := anypb.New(&errdetails.Help{Links: ex.Links}); err == nil {
			pb.Details = append(pb.Details, a)
		}
	}
	return gstatus.FromProto(pb)
}

// FromError rebuilds a *hexffi.Error from a gRPC error produced by ToStatus
// or the interceptor. It reports false for foreign errors.
func FromError(err error) (*hexffi.Error, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	return adapter.FromStatusProto(st.Proto())
}

// RequestInfo pulls the errdetails.RequestInfo out of a gRPC error, if
// present.
func RequestInfo(err error) (*errdetails.RequestInfo, bool) {
	st, ok := gstatus.FromError(err)
	if !ok || err == nil {
		return nil, false
	}
	for _, d := range st.Details() {
		if ri, ok := d.(*errdetails.RequestInfo); ok {
			return ri, true
		}
	}
	return nil, false
}

// UnaryServerInterceptor converts handler errors that wrap a *hexffi.Error
// into rich gRPC statuses. Other errors pass through untouched. metaFn may
// be nil.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, *hexffi.Error) Extras { return Extras{} }
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		var he *hexffi.Error
		if !errors.As(err, &he) {
			return nil, err
		}
		return nil, ToStatus(he, m, metaFn(ctx, he)).Err()
	}
}

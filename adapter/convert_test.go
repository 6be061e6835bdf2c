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

package adapter

import (
	"errors"
	"testing"

	"dirpx.dev/hexffi"
	"dirpx.dev/hexffi/apis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/types/known/anypb"
)

func chain() *hexffi.Error {
	inner := hexffi.InvalidHexDigit('g')
	return hexffi.Wrap(hexffi.KindInvalidFormat, inner, hexffi.WithoutTrace())
}

func TestToView(t *testing.T) {
	v := ToView(chain(), apis.Status{HTTP: 400, GRPC: codes.InvalidArgument})

	assert.Equal(t, uint32(2), v.Code)
	assert.Equal(t, "invalid_format", v.Name)
	assert.Equal(t, "hexffi.input.format", v.Reason)
	assert.Equal(t, "Invalid format", v.Message)
	assert.Equal(t, 400, v.HTTPStatus)
	assert.Equal(t, int(codes.InvalidArgument), v.GRPCCode)
	assert.Empty(t, v.Trace)

	require.Len(t, v.Causes, 1)
	c := v.Causes[0]
	assert.Equal(t, uint32(3), c.Code)
	assert.Equal(t, "Invalid hex digit: g", c.Message)
	assert.Contains(t, c.Trace, "TestToView")
	assert.Zero(t, c.HTTPStatus)
	assert.Empty(t, c.Causes)
}

func TestToView_Nil(t *testing.T) {
	assert.Equal(t, apis.ErrorView{}, ToView(nil, apis.Status{HTTP: 500}))
}

func TestToStatusProto(t *testing.T) {
	e := hexffi.Wrap(hexffi.KindOverflow, hexffi.InvalidHexDigit('z', hexffi.WithoutTrace()))
	s, err := ToStatusProto(e, apis.Status{HTTP: 400, GRPC: codes.OutOfRange})
	require.NoError(t, err)

	assert.Equal(t, int32(codes.OutOfRange), s.GetCode())
	assert.Equal(t, "Overflow: Invalid hex digit: z", s.GetMessage())
	require.Len(t, s.GetDetails(), 3)

	outer := &errdetails.ErrorInfo{}
	require.NoError(t, s.GetDetails()[0].UnmarshalTo(outer))
	assert.Equal(t, Domain, outer.GetDomain())
	assert.Equal(t, "hexffi.parse.overflow", outer.GetReason())
	assert.Equal(t, "4", outer.GetMetadata()[MetaCode])
	assert.Equal(t, "overflow", outer.GetMetadata()[MetaName])
	assert.NotContains(t, outer.GetMetadata(), MetaChar)

	inner := &errdetails.ErrorInfo{}
	require.NoError(t, s.GetDetails()[1].UnmarshalTo(inner))
	assert.Equal(t, "z", inner.GetMetadata()[MetaChar])
	assert.Equal(t, "Invalid hex digit: z", inner.GetMetadata()[MetaMessage])

	dbg := &errdetails.DebugInfo{}
	require.NoError(t, s.GetDetails()[2].UnmarshalTo(dbg))
	assert.Equal(t, "Overflow", dbg.GetDetail())
	require.NotEmpty(t, dbg.GetStackEntries())
	assert.Contains(t, dbg.GetStackEntries()[0], "TestToStatusProto")
}

func TestToStatusProto_NoTraceNoDebugInfo(t *testing.T) {
	s, err := ToStatusProto(hexffi.NullPointer(hexffi.WithoutTrace()), apis.Status{GRPC: codes.InvalidArgument})
	require.NoError(t, err)
	require.Len(t, s.GetDetails(), 1)

	s, err = ToStatusProto(nil, apis.Status{})
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestFromStatusProto_RoundTrip(t *testing.T) {
	orig := chain()
	s, err := ToStatusProto(orig, apis.Status{GRPC: codes.InvalidArgument})
	require.NoError(t, err)

	got, ok := FromStatusProto(s)
	require.True(t, ok)
	assert.Equal(t, orig.Error(), got.Error())
	assert.Equal(t, hexffi.KindInvalidFormat, got.Kind())
	assert.Nil(t, got.Trace())

	require.NotNil(t, got.Source())
	ch, ok := got.Source().Char()
	require.True(t, ok)
	assert.Equal(t, 'g', ch)
	assert.True(t, errors.Is(got, hexffi.ErrInvalidHexDigit))
	assert.Nil(t, got.Source().Source())
}

func TestFromStatusProto_NoDetails(t *testing.T) {
	_, ok := FromStatusProto(nil)
	assert.False(t, ok)

	s, err := ToStatusProto(hexffi.Overflow(), apis.Status{})
	require.NoError(t, err)
	s.Details = s.Details[1:] // keep only DebugInfo
	_, ok = FromStatusProto(s)
	assert.False(t, ok)
}

func TestFromStatusProto_SkipsForeignDomain(t *testing.T) {
	s, err := ToStatusProto(hexffi.InvalidUTF8(), apis.Status{})
	require.NoError(t, err)
	info := &errdetails.ErrorInfo{}
	require.NoError(t, s.Details[0].UnmarshalTo(info))
	info.Domain = "example.com"
	info.Metadata[MetaName] = "not_a_code"
	foreign, err := anyOf(info)
	require.NoError(t, err)
	s.Details = append(s.Details, foreign)

	got, ok := FromStatusProto(s)
	require.True(t, ok)
	assert.Equal(t, hexffi.KindInvalidUTF8, got.Kind())
	assert.Nil(t, got.Source())
}

func anyOf(info *errdetails.ErrorInfo) (*anypb.Any, error) { return anypb.New(info) }

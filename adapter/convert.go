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
	"fmt"
	"strconv"

	"dirpx.dev/hexffi"
	"dirpx.dev/hexffi/apis"
	"dirpx.dev/hexffi/code"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/types/known/anypb"
)

// Domain is the errdetails.ErrorInfo domain used for hexffi errors.
const Domain = "hexffi"

// Metadata keys of errdetails.ErrorInfo.
const (
	MetaCode    = "code"
	MetaName    = "name"
	MetaMessage = "message"
	MetaChar    = "char"
)

// ToView converts e and its causes into an apis.ErrorView. The resolved
// transport status applies to the outermost error only.
func ToView(e *hexffi.Error, st apis.Status) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	v := viewOf(e)
	v.HTTPStatus = st.HTTP
	v.GRPCCode = int(st.GRPC)
	if src := e.Source(); src != nil {
		for _, c := range src.Chain() {
			v.Causes = append(v.Causes, viewOf(c))
		}
	}
	return v
}

func viewOf(e *hexffi.Error) apis.ErrorView {
	return apis.ErrorView{
		Code:    uint32(e.Code()),
		Name:    e.Code().String(),
		Reason:  string(e.Reason()),
		Message: e.Message(),
		Trace:   e.ErrorTrace(),
	}
}

// ToStatusProto builds a google.rpc.Status for e using the resolved gRPC
// code in st. A nil e yields nil.
func ToStatusProto(e *hexffi.Error, st apis.Status) (*spb.Status, error) {
	if e == nil {
		return nil, nil
	}
	out := &spb.Status{
		Code:    int32(st.GRPC),
		Message: e.Error(),
	}
	for _, c := range e.Chain() {
		a, err := anypb.New(ErrorInfo(c))
		if err != nil {
			return nil, fmt.Errorf("adapter: pack error info: %w", err)
		}
		out.Details = append(out.Details, a)
	}
	if tr := e.Trace(); tr.Len() > 0 {
		a, err := anypb.New(&errdetails.DebugInfo{
			StackEntries: tr.Entries(),
			Detail:       e.Message(),
		})
		if err != nil {
			return nil, fmt.Errorf("adapter: pack debug info: %w", err)
		}
		out.Details = append(out.Details, a)
	}
	return out, nil
}

// ErrorInfo describes e alone, without its causes.
func ErrorInfo(e *hexffi.Error) *errdetails.ErrorInfo {
	md := map[string]string{
		MetaCode:    strconv.FormatUint(uint64(e.Code()), 10),
		MetaName:    e.Code().String(),
		MetaMessage: e.Message(),
	}
	if ch, ok := e.Char(); ok {
		md[MetaChar] = string(ch)
	}
	return &errdetails.ErrorInfo{
		Reason:   string(e.Reason()),
		Domain:   Domain,
		Metadata: md,
	}
}

// FromStatusProto rebuilds the error chain carried by s. It reports false
// when s holds no hexffi ErrorInfo. Rebuilt errors carry no trace.
func FromStatusProto(s *spb.Status) (*hexffi.Error, bool) {
	if s == nil {
		return nil, false
	}
	var infos []*errdetails.ErrorInfo
	for _, a := range s.GetDetails() {
		info := &errdetails.ErrorInfo{}
		if !a.MessageIs(info) {
			continue
		}
		if err := a.UnmarshalTo(info); err != nil {
			continue
		}
		if info.GetDomain() != Domain {
			continue
		}
		infos = append(infos, info)
	}

	// Innermost first, so each step wraps the previous one.
	var cur *hexffi.Error
	for i := len(infos) - 1; i >= 0; i-- {
		e, ok := fromInfo(infos[i], cur)
		if !ok {
			continue
		}
		cur = e
	}
	return cur, cur != nil
}

func fromInfo(info *errdetails.ErrorInfo, cause *hexffi.Error) (*hexffi.Error, bool) {
	md := info.GetMetadata()
	c, err := code.Parse(md[MetaName])
	if err != nil {
		if c, err = code.Parse(md[MetaCode]); err != nil {
			return nil, false
		}
	}
	k, ok := hexffi.KindOf(c)
	if !ok {
		return nil, false
	}
	opts := []hexffi.Option{hexffi.WithoutTrace(), hexffi.WithCause(cause)}
	if k == hexffi.KindInvalidHexDigit {
		var ch rune
		for _, r := range md[MetaChar] {
			ch = r
			break
		}
		return hexffi.InvalidHexDigit(ch, opts...), true
	}
	return hexffi.New(k, opts...), true
}

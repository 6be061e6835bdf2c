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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dirpx.dev/hexffi"
	"dirpx.dev/hexffi/adapter"
	"dirpx.dev/hexffi/apis"
	"dirpx.dev/hexffi/boundary"
	"dirpx.dev/hexffi/code"
	"dirpx.dev/hexffi/mapper"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"
)

const (
	outputText  = "text"
	outputJSON  = "json"
	outputProto = "proto"
)

type parseFlags struct {
	width  int
	trace  bool
	null   bool
	output string
}

func newParseCmd(logger func() log.Logger) *cobra.Command {
	var flags parseFlags
	cmd := &cobra.Command{
		Use:   "parse [flags] TEXT...",
		Short: "Parse hexadecimal numbers",
		Long: `Parse each TEXT as a hexadecimal number with an optional 0x prefix.

Failures are reported by walking the error handle the boundary returns.
The exit status is the status code of the first failed input.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if flags.null {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch flags.width {
			case 8, 16, 32, 64:
			default:
				return fmt.Errorf("invalid width %d: want 8, 16, 32 or 64", flags.width)
			}
			switch flags.output {
			case outputText, outputJSON, outputProto:
			default:
				return fmt.Errorf("invalid output %q: want text, json or proto", flags.output)
			}
			p := &parser{
				flags:  flags,
				out:    cmd.OutOrStdout(),
				logger: logger(),
				mapper: mapper.MustNew(),
			}
			inputs := make([][]byte, 0, len(args))
			for _, a := range args {
				inputs = append(inputs, []byte(a))
			}
			if flags.null {
				inputs = append(inputs, nil)
			}
			return p.run(inputs)
		},
	}
	cmd.Flags().IntVarP(&flags.width, "width", "w", 64, "Result width in bits (8, 16, 32, 64)")
	cmd.Flags().BoolVar(&flags.trace, "trace", false, "Include the captured backtrace of failures")
	cmd.Flags().BoolVar(&flags.null, "null", false, "Pass a NULL text pointer instead of arguments")
	cmd.Flags().StringVarP(&flags.output, "output", "o", outputText, "Output format (text, json, proto)")
	return cmd
}

type parser struct {
	flags  parseFlags
	out    io.Writer
	logger log.Logger
	mapper apis.Mapper
}

// link is what the handle accessors report for one error of a chain.
type link struct {
	code      code.Code
	message   string
	char      uint32
	backtrace *string
}

func (p *parser) run(inputs [][]byte) error {
	first := code.OK
	for _, in := range inputs {
		st, err := p.one(in)
		if err != nil {
			return err
		}
		if st != code.OK && first == code.OK {
			first = st
		}
	}
	level.Debug(p.logger).Log("msg", "done", "inputs", len(inputs), "live_handles", boundary.Live())
	if first != code.OK {
		return &exitError{status: int(first)}
	}
	return nil
}

func (p *parser) one(text []byte) (code.Code, error) {
	v, h, st := parseWidth(text, p.flags.width)
	name := display(text)
	if st == code.OK {
		level.Debug(p.logger).Log("msg", "parsed", "input", name, "width", p.flags.width, "value", v)
		return st, p.writeValue(name, v)
	}
	level.Info(p.logger).Log("msg", "parse failed", "input", name, "status", uint32(st), "code", st)

	var err error
	switch p.flags.output {
	case outputJSON:
		err = p.writeView(name, st, boundary.Lookup(h))
	case outputProto:
		err = p.writeStatus(boundary.Lookup(h))
	}
	chain, ierr := inspect(h)
	if ierr != nil {
		return st, ierr
	}
	if err != nil {
		return st, err
	}
	if p.flags.output == outputText {
		return st, p.writeChain(name, chain)
	}
	return st, nil
}

// inspect walks h and its causes through the accessors and destroys every
// handle it was given or obtained, also on failure.
func inspect(h boundary.Handle) ([]link, error) {
	var chain []link
	for cur := h; cur != 0; {
		var (
			l    link
			next boundary.Handle
		)
		err := access(
			accessor{"get code", func() code.Code { return boundary.GetCode(cur, &l.code) }},
			accessor{"get message", func() code.Code { return boundary.GetMessage(cur, &l.message) }},
			accessor{"get char", func() code.Code { return boundary.GetChar(cur, &l.char) }},
			accessor{"get backtrace", func() code.Code { return boundary.GetBacktrace(cur, &l.backtrace) }},
			accessor{"get cause", func() code.Code { return boundary.GetCause(cur, &next) }},
		)
		boundary.Destroy(cur)
		if err != nil {
			boundary.Destroy(next)
			return nil, err
		}
		chain = append(chain, l)
		cur = next
	}
	return chain, nil
}

// accessor is one boundary query made by inspect.
type accessor struct {
	name string
	call func() code.Code
}

// access runs each accessor in order and stops at the first non-OK status.
func access(steps ...accessor) error {
	for _, s := range steps {
		if st := s.call(); st != code.OK {
			return fmt.Errorf("%s: status %d (%s)", s.name, uint32(st), st)
		}
	}
	return nil
}

func parseWidth(text []byte, width int) (uint64, boundary.Handle, code.Code) {
	switch width {
	case 8:
		return parseAs[uint8](text)
	case 16:
		return parseAs[uint16](text)
	case 32:
		return parseAs[uint32](text)
	default:
		return parseAs[uint64](text)
	}
}

func parseAs[T boundary.Unsigned](text []byte) (uint64, boundary.Handle, code.Code) {
	var (
		v T
		h boundary.Handle
	)
	st := boundary.Parse(text, &v, &h)
	return uint64(v), h, st
}

func display(text []byte) string {
	if text == nil {
		return "(null)"
	}
	return strconv.Quote(string(text))
}

func (p *parser) writeValue(name string, v uint64) error {
	var err error
	switch p.flags.output {
	case outputJSON:
		err = json.NewEncoder(p.out).Encode(record{Input: name, Status: 0, Value: &v})
	case outputProto:
		err = p.writeProto(&spb.Status{Message: strconv.FormatUint(v, 10)})
	default:
		_, err = fmt.Fprintf(p.out, "%s = %d (0x%X)\n", name, v, v)
	}
	return err
}

func (p *parser) writeChain(name string, chain []link) error {
	var b strings.Builder
	for i, l := range chain {
		if i == 0 {
			fmt.Fprintf(&b, "%s: error %d %s: %s\n", name, uint32(l.code), l.code, l.message)
		} else {
			fmt.Fprintf(&b, "  caused by: error %d %s: %s\n", uint32(l.code), l.code, l.message)
		}
		if l.char != 0 {
			fmt.Fprintf(&b, "  char: %U %q\n", rune(l.char), rune(l.char))
		}
		if p.flags.trace && l.backtrace != nil {
			b.WriteString("  backtrace:\n")
			for _, line := range strings.Split(strings.TrimRight(*l.backtrace, "\n"), "\n") {
				b.WriteString("    " + line + "\n")
			}
		}
	}
	_, err := io.WriteString(p.out, b.String())
	return err
}

// record is one line of json output.
type record struct {
	Input  string          `json:"input"`
	Status uint32          `json:"status"`
	Value  *uint64         `json:"value,omitempty"`
	Error  *apis.ErrorView `json:"error,omitempty"`
}

func (p *parser) writeView(name string, st code.Code, e *hexffi.Error) error {
	view := adapter.ToView(e, p.mapper.Status(e.Code(), e.Reason()))
	if !p.flags.trace {
		stripTrace(&view)
	}
	return json.NewEncoder(p.out).Encode(record{Input: name, Status: uint32(st), Error: &view})
}

func (p *parser) writeStatus(e *hexffi.Error) error {
	pb, err := adapter.ToStatusProto(e, p.mapper.Status(e.Code(), e.Reason()))
	if err != nil {
		return err
	}
	if !p.flags.trace {
		kept := pb.Details[:0]
		for _, a := range pb.Details {
			if !a.MessageIs(&errdetails.DebugInfo{}) {
				kept = append(kept, a)
			}
		}
		pb.Details = kept
	}
	return p.writeProto(pb)
}

func (p *parser) writeProto(pb *spb.Status) error {
	b, err := protojson.Marshal(pb)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.out, "%s\n", b)
	return err
}

func stripTrace(v *apis.ErrorView) {
	v.Trace = ""
	for i := range v.Causes {
		stripTrace(&v.Causes[i])
	}
}

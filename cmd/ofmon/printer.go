package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/little-dude/ofpkt/ofp4"
	"github.com/little-dude/ofpkt/oxm"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// record is one line (text) or one document (yaml) of output.
type record struct {
	Source  string   `yaml:"source,omitempty"`
	Message string   `yaml:"message,omitempty"`
	Xid     uint32   `yaml:"xid,omitempty"`
	Detail  string   `yaml:"detail,omitempty"`
	Hex     string   `yaml:"hex,omitempty"`
	Match   []string `yaml:"match,omitempty"`
	Frame   []string `yaml:"frame,omitempty"`
}

type printer struct {
	w    io.Writer
	yaml *yaml.Encoder
}

func newPrinter(w io.Writer, format string) (*printer, error) {
	switch format {
	case "text":
		return &printer{w: w}, nil
	case "yaml":
		return &printer{w: w, yaml: yaml.NewEncoder(w)}, nil
	}
	return nil, errors.Errorf("unknown output format %q", format)
}

func (self *printer) print(r record) error {
	if self.yaml != nil {
		return errors.Wrap(self.yaml.Encode(r), "yaml")
	}
	var comps []string
	if r.Source != "" {
		comps = append(comps, r.Source)
	}
	if r.Message != "" {
		comps = append(comps, fmt.Sprintf("%s(xid=%d)", r.Message, r.Xid))
	}
	if r.Detail != "" {
		comps = append(comps, r.Detail)
	}
	if r.Hex != "" {
		comps = append(comps, r.Hex)
	}
	if len(r.Match) > 0 {
		comps = append(comps, "match="+strings.Join(r.Match, ","))
	}
	if len(r.Frame) > 0 {
		comps = append(comps, "frame="+strings.Join(r.Frame, ","))
	}
	_, err := fmt.Fprintln(self.w, strings.Join(comps, " "))
	return err
}

func fieldStrings(fields []oxm.FlowMatchField) []string {
	ret := make([]string, 0, len(fields))
	for _, f := range fields {
		ret = append(ret, f.String())
	}
	return ret
}

func matchStrings(m oxm.FlowMatch[oxm.Opaque]) []string {
	ret := make([]string, 0, len(m))
	for _, o := range m {
		ret = append(ret, o.String())
	}
	return ret
}

// messageRecord renders a decoded message. Packet-ins also get the fields
// read from their frame.
func messageRecord(source string, msg ofp4.Message[oxm.Opaque]) record {
	r := record{
		Source:  source,
		Message: ofp4.TypeName(msg.Type),
		Xid:     msg.Xid,
	}
	switch body := msg.Body.(type) {
	case ofp4.PacketIn[oxm.Opaque]:
		r.Detail = fmt.Sprintf("buffer_id=%d,total_len=%d,reason=%v,table_id=%d,cookie=0x%x",
			body.BufferID, body.TotalLen, body.Reason, body.TableID, body.Cookie)
		r.Match = matchStrings(body.Match)
		r.Frame = fieldStrings(oxm.FrameFields(body.Packet()))
	case fmt.Stringer:
		r.Detail = body.String()
	}
	return r
}

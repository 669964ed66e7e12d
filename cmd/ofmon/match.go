package main

import (
	"encoding/hex"
	"strings"

	"github.com/little-dude/ofpkt/oxm"
	"github.com/pkg/errors"
)

func decodeMatch(out *printer, txt string) error {
	txt = strings.NewReplacer(" ", "", ":", "", "\n", "").Replace(txt)
	buf, err := hex.DecodeString(txt)
	if err != nil {
		return errors.Wrap(err, "hex")
	}
	m, err := oxm.ParseFlowMatch[oxm.Opaque](buf)
	if err != nil {
		return err
	}
	logger.Debugf("decoded %d oxm from %d bytes", len(m), len(buf))
	return out.print(record{Match: matchStrings(m)})
}

func encodeMatch(out *printer, txt string) error {
	fields, err := oxm.ParseText(txt)
	if err != nil {
		return err
	}
	buf, err := oxm.NewFlowMatch[oxm.Opaque](fields...).MarshalBinary()
	if err != nil {
		return err
	}
	return out.print(record{Hex: hex.EncodeToString(buf), Match: fieldStrings(fields)})
}

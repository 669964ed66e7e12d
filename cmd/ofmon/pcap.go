package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	lru "github.com/hashicorp/golang-lru"
	"github.com/little-dude/ofpkt/ofp4"
	"github.com/little-dude/ofpkt/oxm"
	"github.com/pkg/errors"
)

// streamCache keeps the unparsed tail of each OpenFlow TCP stream. Segments
// are assumed to be captured in order; a gap shows up as a malformed message
// and the stream is reset.
type streamCache struct {
	cache *lru.Cache
}

func newStreamCache(size int) (*streamCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "stream cache")
	}
	return &streamCache{cache: c}, nil
}

func (self *streamCache) feed(key string, payload []byte) []ofp4.Header {
	var buf []byte
	if v, ok := self.cache.Get(key); ok {
		buf = v.([]byte)
	}
	buf = append(buf, payload...)

	msgs, rest, err := ofp4.Iter(buf)
	if err != nil {
		logger.Warningf("%s: %v, resetting stream", key, err)
		self.cache.Remove(key)
		return msgs
	}
	if len(rest) == 0 {
		self.cache.Remove(key)
	} else {
		self.cache.Add(key, append([]byte(nil), rest...))
	}
	return msgs
}

func readPcap(out *printer, path string, port, streams int) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "pcap")
	}
	defer f.Close()

	r, err := pcapgo.NewReader(f)
	if err != nil {
		return errors.Wrap(err, "pcap")
	}
	cache, err := newStreamCache(streams)
	if err != nil {
		return err
	}

	src := gopacket.NewPacketSource(r, r.LinkType())
	for {
		pkt, err := src.NextPacket()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrap(err, "pcap")
		}

		tl := pkt.Layer(layers.LayerTypeTCP)
		if tl == nil || pkt.NetworkLayer() == nil {
			continue
		}
		tcp := tl.(*layers.TCP)
		if int(tcp.SrcPort) != port && int(tcp.DstPort) != port {
			continue
		}
		if len(tcp.Payload) == 0 {
			continue
		}

		key := fmt.Sprintf("%v:%v", pkt.NetworkLayer().NetworkFlow(), tcp.TransportFlow())
		for _, hdr := range cache.feed(key, tcp.Payload) {
			msg, err := ofp4.ParseMessage[oxm.Opaque](hdr)
			if err != nil {
				logger.Debugf("%s %v: %v", key, hdr, err)
				continue
			}
			if err := out.print(messageRecord(key, msg)); err != nil {
				return err
			}
		}
	}
}

package oxm

import (
	"net"
	"strconv"
	"strings"

	"github.com/little-dude/ofpkt/view"
	"github.com/pkg/errors"
)

func parsePair(txt string) (string, string, int) {
	if sep := strings.IndexRune(txt, ','); sep >= 0 {
		txt = txt[:sep]
	}
	if split := strings.IndexRune(txt, '/'); split > 0 {
		return txt[:split], txt[split+1:], len(txt)
	} else {
		return txt, "", len(txt)
	}
}

// parseUint accepts decimal or 0x-prefixed hex.
func parseUint(txt string, bits int) (uint64, error) {
	if strings.HasPrefix(txt, "0x") || strings.HasPrefix(txt, "0X") {
		return strconv.ParseUint(txt[2:], 16, bits)
	}
	return strconv.ParseUint(txt, 10, bits)
}

func parseIP(info *fieldInfo, txt string) (net.IP, error) {
	ip := net.ParseIP(txt)
	if ip == nil {
		return nil, errors.Errorf("%s: bad address %q", info.name, txt)
	}
	if info.length == net.IPv4len {
		if ip = ip.To4(); ip == nil {
			return nil, errors.Errorf("%s: %q is not ipv4", info.name, txt)
		}
	}
	return ip, nil
}

// parseIPMask takes a dotted mask or a prefix length.
func parseIPMask(info *fieldInfo, txt string) ([]byte, error) {
	if ones, err := strconv.Atoi(txt); err == nil {
		if ones < 0 || ones > 8*info.length {
			return nil, errors.Errorf("%s: prefix length %d", info.name, ones)
		}
		return net.CIDRMask(ones, 8*info.length), nil
	}
	ip, err := parseIP(info, txt)
	return []byte(ip), err
}

func parseValue(info *fieldInfo, value, mask string, p view.Bytes) error {
	val := view.Span(0, info.length)
	msk := view.Span(info.length, info.length)
	switch info.format {
	case formatPort:
		port, err := ParsePortNo(value)
		if err != nil {
			return err
		}
		p.PutUint(val, uint64(port))
	case formatPacketType:
		sep := strings.IndexRune(value, ':')
		if sep < 0 {
			return errors.Errorf("%s: want namespace:type, got %q", info.name, value)
		}
		ns, err := parseUint(value[:sep], 16)
		if err != nil {
			return errors.Wrap(err, info.name)
		}
		typ, err := parseUint(value[sep+1:], 16)
		if err != nil {
			return errors.Wrap(err, info.name)
		}
		p.PutUint(val, ns<<16|typ)
	case formatMAC:
		hw, err := net.ParseMAC(value)
		if err != nil {
			return errors.Wrap(err, info.name)
		}
		p.Copy(val, hw)
		if len(mask) > 0 {
			m, err := net.ParseMAC(mask)
			if err != nil {
				return errors.Wrap(err, info.name)
			}
			p.Copy(msk, m)
		}
	case formatIP:
		ip, err := parseIP(info, value)
		if err != nil {
			return err
		}
		p.Copy(val, ip)
		if len(mask) > 0 {
			m, err := parseIPMask(info, mask)
			if err != nil {
				return err
			}
			p.Copy(msk, m)
		}
	default:
		v, err := parseUint(value, 8*info.length)
		if err != nil {
			return errors.Wrap(err, info.name)
		}
		p.PutUint(val, v)
		if len(mask) > 0 {
			m, err := parseUint(mask, 8*info.length)
			if err != nil {
				return errors.Wrap(err, info.name)
			}
			p.PutUint(msk, m)
		}
	}
	return nil
}

// ParseTextOne parses one "name=value[/mask]" token at the start of txt and
// returns the field and the number of bytes consumed.
func ParseTextOne(txt string) (FlowMatchField, int, error) {
	labelIdx := strings.IndexRune(txt, '=')
	if labelIdx <= 0 {
		return nil, 0, errors.Errorf("parse failed %s", txt)
	}
	label := txt[:labelIdx]
	value, mask, baseN := parsePair(txt[labelIdx+1:])

	code, info, ok := lookupName(label)
	if !ok {
		return nil, 0, errors.Errorf("unknown field %s", label)
	}
	if len(mask) > 0 && !info.maskable {
		return nil, 0, errors.Errorf("%s not maskable", label)
	}

	length := info.length
	if len(mask) > 0 {
		length *= 2
	}
	buf := make([]byte, TLVHeaderLen+length)
	if err := parseValue(info, value, mask, view.New(buf[TLVHeaderLen:])); err != nil {
		return nil, 0, err
	}
	writeHeader(buf, OFPXMC_OPENFLOW_BASIC, code, len(mask) > 0, length)
	f, err := ParseBasic(TLV(buf))
	if err != nil {
		return nil, 0, err
	}
	return f, labelIdx + 1 + baseN, nil
}

// ParseText parses a comma separated list of fields, the form String
// produces.
func ParseText(txt string) ([]FlowMatchField, error) {
	var ret []FlowMatchField
	for len(txt) > 0 {
		f, n, err := ParseTextOne(txt)
		if err != nil {
			return nil, err
		}
		ret = append(ret, f)
		txt = txt[n:]
		if len(txt) > 0 {
			if txt[0] != ',' {
				return nil, errors.Errorf("expected ',' before %s", txt)
			}
			txt = txt[1:]
		}
	}
	return ret, nil
}

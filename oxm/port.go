package oxm

import (
	"strconv"

	"github.com/pkg/errors"
)

// PortNo is an OpenFlow port number. Values above OFPP_MAX are reserved
// ports with a symbolic name.
type PortNo uint32

var portNames = map[PortNo]string{
	OFPP_MAX:        "max",
	OFPP_UNSET:      "unset",
	OFPP_IN_PORT:    "in_port",
	OFPP_TABLE:      "table",
	OFPP_NORMAL:     "normal",
	OFPP_FLOOD:      "flood",
	OFPP_ALL:        "all",
	OFPP_CONTROLLER: "controller",
	OFPP_LOCAL:      "local",
	OFPP_ANY:        "any",
}

func (self PortNo) IsReserved() bool {
	return self > OFPP_MAX
}

func (self PortNo) String() string {
	if name, ok := portNames[self]; ok {
		return name
	}
	return strconv.FormatUint(uint64(self), 10)
}

// ParsePortNo accepts a reserved port name or an integer in decimal or 0x
// hex form.
func ParsePortNo(txt string) (PortNo, error) {
	for port, name := range portNames {
		if name == txt {
			return port, nil
		}
	}
	v, err := parseUint(txt, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "port %q", txt)
	}
	return PortNo(v), nil
}

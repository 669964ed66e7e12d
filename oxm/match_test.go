package oxm

import (
	"bytes"
	"testing"

	"github.com/little-dude/ofpkt"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scenarioMatch = []byte{
	0x00, 0x01, 0x00, 0x1e,
	0x80, 0x00, 0x00, 0x04, 0x00, 0x00, 0xab, 0xcd,
	0x80, 0x00, 0x4c, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xc3, 0x50,
	0x80, 0x00, 0x0c, 0x02, 0x07, 0x77,
	0x00, 0x00,
}

func TestFlowMatchScenario(t *testing.T) {
	m := NewFlowMatch[NoExperimenter](
		NewInPort(0xabcd),
		NewTunnelID(50000),
		NewVlanVID(0x0777),
	)
	assert.Equal(t, 30, m.Length())
	assert.Equal(t, 32, m.BufferLen())

	buf, err := m.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, scenarioMatch, buf)

	parsed, err := ParseFlowMatch[NoExperimenter](scenarioMatch)
	require.NoError(t, err)
	assert.Equal(t, m, parsed)
	assert.Equal(t, "in_port=43981,tunnel_id=0xc350,vlan_vid=0x777", parsed.String())
}

func TestFlowMatchEmpty(t *testing.T) {
	m := FlowMatch[NoExperimenter]{}
	buf, err := m.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00}, buf)

	parsed, err := ParseFlowMatch[NoExperimenter](buf)
	require.NoError(t, err)
	assert.Len(t, parsed, 0)
}

func TestFlowMatchPadding(t *testing.T) {
	for _, f := range sampleFields() {
		m := NewFlowMatch[NoExperimenter](f, NewInPort(1), f)
		assert.Zero(t, m.BufferLen()%8)
		assert.True(t, m.BufferLen() >= 4+2*f.BufferLen()+8)

		buf := bytes.Repeat([]byte{0xaa}, m.BufferLen())
		require.NoError(t, m.Emit(buf))
		for _, b := range buf[m.Length():] {
			assert.Equal(t, byte(0), b, "padding after %s", f)
		}

		parsed, err := ParseFlowMatch[NoExperimenter](buf)
		require.NoError(t, err)
		assert.Equal(t, m, parsed, "duplicates and order are kept")
	}
}

func TestFlowMatchEmitExhausted(t *testing.T) {
	m := NewFlowMatch[NoExperimenter](NewInPort(0xabcd), NewTunnelID(50000), NewVlanVID(0x0777))
	buf := bytes.Repeat([]byte{0xaa}, 31)
	err := m.Emit(buf)
	assert.Equal(t, ofpkt.ErrExhausted, errors.Cause(err))
	assert.Equal(t, bytes.Repeat([]byte{0xaa}, 31), buf)
}

func TestFlowMatchErrors(t *testing.T) {
	cases := []struct {
		name string
		buf  []byte
		err  error
	}{
		{"short header", []byte{0x00, 0x01, 0x00}, ofpkt.ErrTruncated},
		{"padding missing", scenarioMatch[:30], ofpkt.ErrTruncated},
		{"length below header", []byte{0x00, 0x01, 0x00, 0x02, 0, 0, 0, 0}, ofpkt.ErrMalformed},
		{"standard match", []byte{0x00, 0x00, 0x00, 0x04, 0, 0, 0, 0}, ofpkt.ErrBadMatchType},
		{"element truncated", []byte{
			0x00, 0x01, 0x00, 0x0a,
			0x80, 0x00, 0x00, 0x04, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, ofpkt.ErrTruncated},
		{"unknown class", []byte{
			0x00, 0x01, 0x00, 0x08,
			0x12, 0x34, 0x00, 0x00}, ofpkt.ErrBadOxmClass},
		{"nxm class", []byte{
			0x00, 0x01, 0x00, 0x08,
			0x00, 0x01, 0x00, 0x00}, ofpkt.ErrUnsupportedOxmClass},
		{"experimenter refused", []byte{
			0x00, 0x01, 0x00, 0x0c,
			0xff, 0xff, 0x00, 0x04, 0x00, 0x00, 0x00, 0x01,
			0x00, 0x00, 0x00, 0x00}, ofpkt.ErrUnsupportedOxmClass},
	}
	for _, c := range cases {
		_, err := ParseFlowMatch[NoExperimenter](c.buf)
		assert.Equal(t, c.err, errors.Cause(err), c.name)
	}
}

func TestFlowMatchTrailingBytes(t *testing.T) {
	buf := []byte{
		0x00, 0x01, 0x00, 0x0f,
		0x80, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x07,
		0x80, 0x00, 0x00,
		0x00,
	}
	m, err := ParseFlowMatch[NoExperimenter](buf)
	require.NoError(t, err)
	require.Len(t, m, 1)
	assert.Equal(t, NewInPort(7), m[0].Basic)
}

func TestParsedMatchDoesNotAlias(t *testing.T) {
	buf := append([]byte(nil), scenarioMatch...)
	m, err := ParseFlowMatch[Opaque](buf)
	require.NoError(t, err)
	for i := range buf {
		buf[i] = 0xff
	}
	assert.Equal(t, "in_port=43981,tunnel_id=0xc350,vlan_vid=0x777", m.String())
}

func TestRegistersScenario(t *testing.T) {
	reg := PacketRegisters{Field: 31, Value: 0x0102030405060708}
	assert.Equal(t, 12, reg.BufferLen())
	buf, err := ofpkt.Marshal(reg)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, 0x01, 0x3e, 0x08, 1, 2, 3, 4, 5, 6, 7, 8}, buf)

	o, err := ParseOxm[NoExperimenter](buf)
	require.NoError(t, err)
	require.NotNil(t, o.Registers)
	assert.Equal(t, reg, *o.Registers)
	assert.Equal(t, "reg31=0x102030405060708", o.String())

	mask := uint64(0xff)
	reg.Mask = &mask
	assert.Equal(t, 20, reg.BufferLen())
	buf, err = ofpkt.Marshal(reg)
	require.NoError(t, err)
	assert.Equal(t, byte(0x3f), buf[2])
	assert.Equal(t, byte(16), buf[3])
	o, err = ParseOxm[NoExperimenter](buf)
	require.NoError(t, err)
	assert.Equal(t, reg, *o.Registers)
}

func TestRegistersErrors(t *testing.T) {
	for _, length := range []byte{0, 4, 12, 20} {
		buf := make([]byte, 4+int(length))
		copy(buf, []byte{0x80, 0x01, 0x3e, length})
		_, err := ParseOxm[NoExperimenter](buf)
		assert.Equal(t, ofpkt.ErrMalformed, errors.Cause(err), "length %d", length)
	}
	// has-mask disagreeing with the length
	buf := make([]byte, 12)
	copy(buf, []byte{0x80, 0x01, 0x3f, 0x08})
	_, err := ParseOxm[NoExperimenter](buf)
	assert.Equal(t, ofpkt.ErrMalformed, errors.Cause(err))

	_, err = ParseOxm[NoExperimenter]([]byte{0x80, 0x01, 0x3e, 0x08, 0, 0})
	assert.Equal(t, ofpkt.ErrTruncated, errors.Cause(err))

	err = PacketRegisters{Field: 0x80}.Emit(make([]byte, 12))
	assert.Equal(t, ofpkt.ErrMalformed, errors.Cause(err))
}

func TestOpaqueExperimenter(t *testing.T) {
	wire := []byte{
		0xff, 0xff, 0x05, 0x06,
		0x00, 0x00, 0x23, 0x20,
		0xde, 0xad,
	}
	o, err := ParseOxm[Opaque](wire)
	require.NoError(t, err)
	require.NotNil(t, o.Experimenter)
	exp := *o.Experimenter
	assert.Equal(t, Opaque{Experimenter: 0x2320, Field: 2, HasMask: true, Body: []byte{0xde, 0xad}}, exp)
	assert.Equal(t, 10, o.BufferLen())
	assert.Equal(t, "experimenter(0x00002320:2/m)=dead", o.String())

	buf, err := ofpkt.Marshal(o)
	require.NoError(t, err)
	assert.Equal(t, wire, buf)

	// the parser sees the rest of the list but consumes only its own TLV
	m := FlowMatch[Opaque]{ExperimenterOxm(exp), BasicOxm[Opaque](NewInPort(1))}
	mb, err := m.MarshalBinary()
	require.NoError(t, err)
	parsed, err := ParseFlowMatch[Opaque](mb)
	require.NoError(t, err)
	assert.Equal(t, m, parsed)

	_, err = ParseOxm[Opaque]([]byte{0xff, 0xff, 0x00, 0x02, 0x00, 0x00})
	assert.Equal(t, ofpkt.ErrMalformed, errors.Cause(err))
	_, err = ParseOxm[Opaque]([]byte{0xff, 0xff, 0x00, 0x08, 0x00, 0x00, 0x23, 0x20})
	assert.Equal(t, ofpkt.ErrTruncated, errors.Cause(err))
}

type nameStringer struct{}

func (nameStringer) FromOpaque(o Opaque) string {
	return "onf_field=" + string(o.Body)
}

func TestRegisterStringer(t *testing.T) {
	RegisterStringer(0x4f4e4600, nameStringer{})
	defer delete(stringers, 0x4f4e4600)
	o := Opaque{Experimenter: 0x4f4e4600, Body: []byte("abc")}
	assert.Equal(t, "onf_field=abc", o.String())
}

func TestOxmVariants(t *testing.T) {
	var empty Oxm[NoExperimenter]
	assert.Equal(t, ofpkt.ErrMalformed, errors.Cause(empty.Emit(make([]byte, 16))))

	reg := PacketRegisters{Field: 1}
	both := Oxm[NoExperimenter]{Basic: NewInPort(1), Registers: &reg}
	assert.Equal(t, ofpkt.ErrMalformed, errors.Cause(both.Emit(make([]byte, 16))))

	_, err := ParseOxm[NoExperimenter]([]byte{0x00, 0x00, 0x00, 0x00})
	assert.Equal(t, ofpkt.ErrUnsupportedOxmClass, errors.Cause(err))
	_, err = ParseOxm[NoExperimenter]([]byte{0x80, 0x02, 0x00, 0x00})
	assert.Equal(t, ofpkt.ErrBadOxmClass, errors.Cause(err))
	_, err = ParseOxm[NoExperimenter]([]byte{0x80, 0x00})
	assert.Equal(t, ofpkt.ErrTruncated, errors.Cause(err))
}

package oxm

import (
	"bytes"
	"net"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/gopacket/layers"
	"github.com/little-dude/ofpkt"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMAC(s string) net.HardwareAddr {
	hw, err := net.ParseMAC(s)
	if err != nil {
		panic(err)
	}
	return hw
}

func sampleFields() []FlowMatchField {
	return []FlowMatchField{
		NewInPort(0xabcd),
		NewInPhyPort(OFPP_LOCAL),
		NewMetadata(0x0102030405060708),
		NewMetadataMasked(0x05, 0xff),
		NewEthDst(mustMAC("01:02:03:04:05:06")),
		NewEthSrcMasked(mustMAC("00:00:00:00:00:00"), mustMAC("01:00:00:00:00:00")),
		NewEthType(layers.EthernetTypeIPv4),
		NewVlanVID(0x1005),
		NewVlanVIDMasked(0x1000, 0x1000),
		NewVlanPCP(5),
		NewIPDSCP(0x2e),
		NewIPECN(2),
		NewIPProto(layers.IPProtocolTCP),
		NewIPv4Src(net.IPv4(10, 0, 0, 1)),
		NewIPv4DstMasked(net.IPv4(10, 0, 0, 0), net.CIDRMask(8, 32)),
		NewTCPSrc(80),
		NewTCPDst(6653),
		NewUDPSrc(53),
		NewUDPDst(4789),
		NewSCTPSrc(9),
		NewSCTPDst(10),
		NewICMPv4Type(8),
		NewICMPv4Code(0),
		NewARPOp(1),
		NewARPSpa(net.IPv4(192, 168, 0, 1)),
		NewARPTpaMasked(net.IPv4(192, 168, 0, 0), net.CIDRMask(16, 32)),
		NewARPSha(mustMAC("aa:bb:cc:dd:ee:ff")),
		NewARPThaMasked(mustMAC("aa:bb:cc:00:00:00"), mustMAC("ff:ff:ff:00:00:00")),
		NewIPv6Src(net.ParseIP("fe80::1")),
		NewIPv6DstMasked(net.ParseIP("2001:db8::"), net.CIDRMask(32, 128)),
		NewIPv6FLabel(0x12345),
		NewIPv6FLabelMasked(0x12345, 0xff),
		NewICMPv6Type(135),
		NewICMPv6Code(0),
		NewIPv6NDTarget(net.ParseIP("fe80::2")),
		NewIPv6NDSll(mustMAC("02:00:00:00:00:01")),
		NewIPv6NDTll(mustMAC("02:00:00:00:00:02")),
		NewMPLSLabel(0x12345),
		NewMPLSTC(3),
		NewMPLSBoS(1),
		NewPBBISID(0xabcdef),
		NewPBBISIDMasked(0xabcdef, 0xff0000),
		NewTunnelID(50000),
		NewTunnelIDMasked(50000, 0xffff),
		NewIPv6ExtHdr(OFPIEH_NONEXT | OFPIEH_FRAG),
		NewIPv6ExtHdrMasked(OFPIEH_HOP, OFPIEH_HOP),
		NewPBBUCA(true),
		NewTCPFlags(TCP_FLAG_SYN),
		NewTCPFlagsMasked(TCP_FLAG_SYN|TCP_FLAG_ACK, 0xfff),
		NewActsetOutput(OFPP_CONTROLLER),
		NewPacketType(0, 0),
	}
}

func TestInPortScenario(t *testing.T) {
	wire := []byte{0x80, 0x00, 0x00, 0x04, 0x00, 0x00, 0xab, 0xcd}

	f := NewInPort(0xabcd)
	buf, err := ofpkt.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, wire, buf)

	hdr, err := NewTLV(wire)
	require.NoError(t, err)
	parsed, err := ParseBasic(hdr)
	require.NoError(t, err)
	assert.Equal(t, f, parsed)
	assert.Equal(t, PortNo(0xabcd), parsed.(InPort).Value())
}

func TestFieldRoundTrip(t *testing.T) {
	for _, f := range sampleFields() {
		buf := make([]byte, f.BufferLen())
		require.NoError(t, f.Emit(buf), f.String())

		hdr := TLV(buf)
		assert.EqualValues(t, OFPXMC_OPENFLOW_BASIC, hdr.Class())
		assert.Equal(t, f.Code(), hdr.Field())
		assert.Equal(t, f.HasMask(), hdr.HasMask())
		assert.Equal(t, f.ValueLen(), hdr.Length())

		parsed, err := ParseBasic(hdr)
		require.NoError(t, err, f.String())
		if !assert.Equal(t, f, parsed) {
			t.Log(spew.Sdump(buf))
		}
	}
}

func TestFieldLengths(t *testing.T) {
	for _, f := range sampleFields() {
		info, ok := lookupField(f.Code())
		require.True(t, ok)
		want := info.length
		if f.HasMask() {
			assert.True(t, info.maskable, info.name)
			want *= 2
		}
		assert.Equal(t, want, f.ValueLen(), info.name)
		assert.Equal(t, want+4, f.BufferLen(), info.name)
	}
	assert.Equal(t, 3, NewPBBISID(1).ValueLen())
	assert.Equal(t, 6, NewPBBISIDMasked(1, 1).ValueLen())
	assert.Equal(t, 16, NewIPv6NDTarget(net.IPv6loopback).ValueLen())
}

func TestTruncation(t *testing.T) {
	vid := NewVlanVID(0xffff)
	assert.EqualValues(t, 0x1fff, vid.Value())
	for i := 0; i < 3; i++ {
		vid.SetValue(0xe001)
		assert.EqualValues(t, 0x0001, vid.Value())
	}
	vid.SetMask(0xffff)
	m, ok := vid.Mask()
	assert.True(t, ok)
	assert.EqualValues(t, 0x1fff, m)
	vid.UnsetMask()
	assert.False(t, vid.HasMask())
	assert.Equal(t, 2, vid.ValueLen())

	assert.EqualValues(t, 0x7, NewVlanPCP(0xff).Value())
	assert.EqualValues(t, 0x3f, NewIPDSCP(0xff).Value())
	assert.EqualValues(t, 0x3, NewIPECN(0xff).Value())
	assert.EqualValues(t, 0xfffff, NewIPv6FLabel(0xffffffff).Value())
	assert.EqualValues(t, 0xfffff, NewMPLSLabel(0xffffffff).Value())
	assert.EqualValues(t, 0x7, NewMPLSTC(0xff).Value())
	assert.EqualValues(t, 0x1, NewMPLSBoS(0xff).Value())
	assert.EqualValues(t, 0xffffff, NewPBBISID(0xffffffff).Value())
	assert.EqualValues(t, 0x1ff, NewIPv6ExtHdr(0xffff).Value())
	assert.EqualValues(t, 0xfff, NewTCPFlags(0xffff).Value())
	assert.EqualValues(t, 1, NewPBBUCA(true).Value())
	assert.EqualValues(t, 0, NewPBBUCA(false).Value())

	label := NewMPLSLabel(0)
	label.SetValue(0xfff00001)
	assert.EqualValues(t, 0x00001, label.Value())

	// Full-width fields keep every bit.
	assert.EqualValues(t, uint64(0xffffffffffffffff), NewTunnelID(0xffffffffffffffff).Value())
	assert.EqualValues(t, 0xffff, NewEthType(0xffff).Value())
}

func TestTruncationOnParse(t *testing.T) {
	hdr := TLV{0x80, 0x00, 0x0c, 0x02, 0xff, 0xff}
	f, err := ParseBasic(hdr)
	require.NoError(t, err)
	assert.EqualValues(t, 0x1fff, f.(VlanVID).Value())

	hdr = TLV{0x80, 0x00, 0x4a, 0x03, 0xab, 0xcd, 0xef}
	f, err = ParseBasic(hdr)
	require.NoError(t, err)
	assert.EqualValues(t, 0xabcdef, f.(PBBISID).Value())
}

func TestPBBISIDWire(t *testing.T) {
	buf, err := ofpkt.Marshal(NewPBBISIDMasked(0x123456, 0xffff00))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, 0x00, 0x4b, 0x06, 0x12, 0x34, 0x56, 0xff, 0xff, 0x00}, buf)
}

func TestAddrWire(t *testing.T) {
	buf, err := ofpkt.Marshal(NewIPv4SrcMasked(net.IPv4(192, 168, 0, 1), net.CIDRMask(24, 32)))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, 0x00, 0x17, 0x08, 192, 168, 0, 1, 255, 255, 255, 0}, buf)

	ip := NewIPv4Src(net.IPv4(10, 1, 2, 3))
	assert.Equal(t, [4]byte{10, 1, 2, 3}, ip.Value())
	_, masked := ip.Mask()
	assert.False(t, masked)
}

func TestEmitExhausted(t *testing.T) {
	for _, f := range sampleFields() {
		buf := bytes.Repeat([]byte{0xaa}, f.BufferLen()-1)
		err := f.Emit(buf)
		assert.Equal(t, ofpkt.ErrExhausted, errors.Cause(err), f.String())
		assert.Equal(t, bytes.Repeat([]byte{0xaa}, len(buf)), buf, "nothing written for %s", f)
	}
}

func TestParseBasicErrors(t *testing.T) {
	cases := []struct {
		name string
		hdr  TLV
		err  error
	}{
		{"unassigned field", TLV{0x80, 0x00, 0x50, 0x00}, ofpkt.ErrBadOxmField},
		{"field out of range", TLV{0x80, 0x00, 0x5a, 0x00}, ofpkt.ErrBadOxmField},
		{"short payload", TLV{0x80, 0x00, 0x00, 0x04, 0x00, 0x00}, ofpkt.ErrTruncated},
		{"bad length", TLV{0x80, 0x00, 0x00, 0x02, 0x00, 0x01}, ofpkt.ErrMalformed},
		{"mask on in_port", TLV{0x80, 0x00, 0x01, 0x08, 0, 0, 0, 1, 0, 0, 0, 1}, ofpkt.ErrMalformed},
		{"masked length mismatch", TLV{0x80, 0x00, 0x0d, 0x02, 0x10, 0x00}, ofpkt.ErrMalformed},
		{"not basic", TLV{0x80, 0x01, 0x00, 0x00}, ofpkt.ErrBadOxmClass},
	}
	for _, c := range cases {
		_, err := ParseBasic(c.hdr)
		assert.Equal(t, c.err, errors.Cause(err), c.name)
	}
}

func TestTLVHeader(t *testing.T) {
	_, err := NewTLV([]byte{0x80, 0x00, 0x00})
	assert.True(t, ofpkt.IsTruncated(err))

	hdr := TLV(make([]byte, 4))
	hdr.SetClass(OFPXMC_OPENFLOW_BASIC)
	hdr.SetMask(true)
	hdr.SetField(OFPXMT_OFB_VLAN_VID)
	hdr.SetLength(4)
	assert.Equal(t, TLV{0x80, 0x00, 0x0d, 0x04}, hdr)
	assert.True(t, hdr.HasMask())
	assert.EqualValues(t, OFPXMT_OFB_VLAN_VID, hdr.Field())

	hdr.SetField(OFPXMT_OFB_IN_PORT)
	assert.True(t, hdr.HasMask(), "SetField keeps the mask bit")
	hdr.SetMask(false)
	assert.Equal(t, byte(0x00), hdr[2])
	assert.True(t, ofpkt.IsTruncated(hdr.CheckLen()))
}

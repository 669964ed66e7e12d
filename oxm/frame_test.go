package oxm

import (
	"net"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serialize(t *testing.T, ls ...gopacket.SerializableLayer) gopacket.Packet {
	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	require.NoError(t, gopacket.SerializeLayers(buf, opts, ls...))
	return gopacket.NewPacket(buf.Bytes(), layers.LayerTypeEthernet, gopacket.Default)
}

func TestFrameFieldsTCP(t *testing.T) {
	src := mustMAC("02:00:00:00:00:01")
	dst := mustMAC("02:00:00:00:00:02")
	ip := &layers.IPv4{
		Version:  4,
		IHL:      5,
		TTL:      64,
		TOS:      0xb9,
		Protocol: layers.IPProtocolTCP,
		SrcIP:    net.IPv4(10, 0, 0, 1).To4(),
		DstIP:    net.IPv4(10, 0, 0, 2).To4(),
	}
	tcp := &layers.TCP{SrcPort: 1234, DstPort: 6653, SYN: true, ACK: true, Window: 1024}
	require.NoError(t, tcp.SetNetworkLayerForChecksum(ip))
	pkt := serialize(t,
		&layers.Ethernet{SrcMAC: src, DstMAC: dst, EthernetType: layers.EthernetTypeDot1Q},
		&layers.Dot1Q{Priority: 3, VLANIdentifier: 100, Type: layers.EthernetTypeIPv4},
		ip, tcp, gopacket.Payload("hello"))

	assert.Equal(t, []FlowMatchField{
		NewEthDst(dst),
		NewEthSrc(src),
		NewEthType(layers.EthernetTypeIPv4),
		NewVlanVID(100 | OFPVID_PRESENT),
		NewVlanPCP(3),
		NewIPDSCP(0x2e),
		NewIPECN(1),
		NewIPProto(layers.IPProtocolTCP),
		NewIPv4Src(net.IPv4(10, 0, 0, 1)),
		NewIPv4Dst(net.IPv4(10, 0, 0, 2)),
		NewTCPSrc(1234),
		NewTCPDst(6653),
		NewTCPFlags(TCP_FLAG_SYN | TCP_FLAG_ACK),
	}, FrameFields(pkt))
}

func TestFrameFieldsARP(t *testing.T) {
	src := mustMAC("02:00:00:00:00:01")
	bcast := mustMAC("ff:ff:ff:ff:ff:ff")
	pkt := serialize(t,
		&layers.Ethernet{SrcMAC: src, DstMAC: bcast, EthernetType: layers.EthernetTypeARP},
		&layers.ARP{
			AddrType:          layers.LinkTypeEthernet,
			Protocol:          layers.EthernetTypeIPv4,
			HwAddressSize:     6,
			ProtAddressSize:   4,
			Operation:         layers.ARPRequest,
			SourceHwAddress:   src,
			SourceProtAddress: []byte{10, 0, 0, 1},
			DstHwAddress:      make([]byte, 6),
			DstProtAddress:    []byte{10, 0, 0, 2},
		})

	fields := FrameFields(pkt)
	assert.Equal(t, []FlowMatchField{
		NewEthDst(bcast),
		NewEthSrc(src),
		NewEthType(layers.EthernetTypeARP),
		NewARPOp(layers.ARPRequest),
		NewARPSpa(net.IPv4(10, 0, 0, 1)),
		NewARPTpa(net.IPv4(10, 0, 0, 2)),
		NewARPSha(src),
		NewARPTha(make(net.HardwareAddr, 6)),
	}, fields)

	m := NewFlowMatch[NoExperimenter](fields...)
	buf, err := m.MarshalBinary()
	require.NoError(t, err)
	parsed, err := ParseFlowMatch[NoExperimenter](buf)
	require.NoError(t, err)
	assert.Equal(t, fields, parsed.Basic())
}

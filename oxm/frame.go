package oxm

import (
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

func tcpFlags(t *layers.TCP) uint16 {
	var flags uint16
	for i, set := range []bool{t.FIN, t.SYN, t.RST, t.PSH, t.ACK, t.URG, t.ECE, t.CWR, t.NS} {
		if set {
			flags |= 1 << uint(i)
		}
	}
	return flags
}

func ndOption(opts layers.ICMPv6Options, typ layers.ICMPv6Opt) (net.HardwareAddr, bool) {
	for _, opt := range opts {
		if opt.Type == typ && len(opt.Data) >= 6 {
			return net.HardwareAddr(opt.Data[:6]), true
		}
	}
	return nil, false
}

// FrameFields returns the basic fields a switch pipeline would extract from
// pkt, in layer order. Only the outermost instance of each layer counts.
// Pipeline fields that are not carried by the frame (in_port, metadata,
// tunnel_id) are left to the caller.
func FrameFields(pkt gopacket.Packet) []FlowMatchField {
	var ret []FlowMatchField
	ethType := -1
	seen := make(map[gopacket.LayerType]bool)
	for _, layer := range pkt.Layers() {
		lt := layer.LayerType()
		if seen[lt] {
			continue
		}
		seen[lt] = true

		switch t := layer.(type) {
		case *layers.Ethernet:
			ret = append(ret, NewEthDst(t.DstMAC), NewEthSrc(t.SrcMAC))
			ethType = len(ret)
			ret = append(ret, NewEthType(t.EthernetType))
		case *layers.Dot1Q:
			ret = append(ret,
				NewVlanVID(t.VLANIdentifier|OFPVID_PRESENT),
				NewVlanPCP(t.Priority))
			if ethType >= 0 {
				ret[ethType] = NewEthType(t.Type)
			}
		case *layers.MPLS:
			var bos uint8
			if t.StackBottom {
				bos = 1
			}
			ret = append(ret,
				NewMPLSLabel(t.Label),
				NewMPLSTC(t.TrafficClass),
				NewMPLSBoS(bos))
		case *layers.ARP:
			ret = append(ret, NewARPOp(t.Operation))
			if t.ProtAddressSize == net.IPv4len {
				ret = append(ret,
					NewARPSpa(net.IP(t.SourceProtAddress)),
					NewARPTpa(net.IP(t.DstProtAddress)))
			}
			if t.HwAddressSize == 6 {
				ret = append(ret,
					NewARPSha(net.HardwareAddr(t.SourceHwAddress)),
					NewARPTha(net.HardwareAddr(t.DstHwAddress)))
			}
		case *layers.IPv4:
			ret = append(ret,
				NewIPDSCP(t.TOS>>2),
				NewIPECN(t.TOS&0x03),
				NewIPProto(t.Protocol),
				NewIPv4Src(t.SrcIP),
				NewIPv4Dst(t.DstIP))
		case *layers.IPv6:
			ret = append(ret,
				NewIPDSCP(t.TrafficClass>>2),
				NewIPECN(t.TrafficClass&0x03),
				NewIPProto(t.NextHeader),
				NewIPv6Src(t.SrcIP),
				NewIPv6Dst(t.DstIP),
				NewIPv6FLabel(t.FlowLabel))
		case *layers.TCP:
			ret = append(ret,
				NewTCPSrc(t.SrcPort),
				NewTCPDst(t.DstPort),
				NewTCPFlags(tcpFlags(t)))
		case *layers.UDP:
			ret = append(ret, NewUDPSrc(t.SrcPort), NewUDPDst(t.DstPort))
		case *layers.SCTP:
			ret = append(ret, NewSCTPSrc(t.SrcPort), NewSCTPDst(t.DstPort))
		case *layers.ICMPv4:
			ret = append(ret,
				NewICMPv4Type(t.TypeCode.Type()),
				NewICMPv4Code(t.TypeCode.Code()))
		case *layers.ICMPv6:
			ret = append(ret,
				NewICMPv6Type(t.TypeCode.Type()),
				NewICMPv6Code(t.TypeCode.Code()))
		case *layers.ICMPv6NeighborSolicitation:
			ret = append(ret, NewIPv6NDTarget(t.TargetAddress))
			if hw, ok := ndOption(t.Options, layers.ICMPv6OptSourceAddress); ok {
				ret = append(ret, NewIPv6NDSll(hw))
			}
		case *layers.ICMPv6NeighborAdvertisement:
			ret = append(ret, NewIPv6NDTarget(t.TargetAddress))
			if hw, ok := ndOption(t.Options, layers.ICMPv6OptTargetAddress); ok {
				ret = append(ret, NewIPv6NDTll(hw))
			}
		}
	}
	return ret
}

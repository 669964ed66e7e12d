package oxm

import (
	"github.com/little-dude/ofpkt"
	"github.com/pkg/errors"
)

func decoded[F FlowMatchField, P interface {
	*F
	decode(TLV) error
}](hdr TLV) (FlowMatchField, error) {
	var f F
	if err := P(&f).decode(hdr); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseBasic decodes a basic class TLV into its field type. The result does
// not alias hdr.
func ParseBasic(hdr TLV) (FlowMatchField, error) {
	if hdr.Class() != OFPXMC_OPENFLOW_BASIC {
		return nil, errors.Wrapf(ofpkt.ErrBadOxmClass, "class 0x%04x is not openflow_basic", hdr.Class())
	}
	if _, ok := lookupField(hdr.Field()); !ok {
		return nil, errors.Wrapf(ofpkt.ErrBadOxmField, "field %d", hdr.Field())
	}
	if err := hdr.CheckLen(); err != nil {
		return nil, err
	}
	switch hdr.Field() {
	case OFPXMT_OFB_IN_PORT:
		return decoded[InPort](hdr)
	case OFPXMT_OFB_IN_PHY_PORT:
		return decoded[InPhyPort](hdr)
	case OFPXMT_OFB_METADATA:
		return decoded[Metadata](hdr)
	case OFPXMT_OFB_ETH_DST:
		return decoded[EthDst](hdr)
	case OFPXMT_OFB_ETH_SRC:
		return decoded[EthSrc](hdr)
	case OFPXMT_OFB_ETH_TYPE:
		return decoded[EthType](hdr)
	case OFPXMT_OFB_VLAN_VID:
		return decoded[VlanVID](hdr)
	case OFPXMT_OFB_VLAN_PCP:
		return decoded[VlanPCP](hdr)
	case OFPXMT_OFB_IP_DSCP:
		return decoded[IPDSCP](hdr)
	case OFPXMT_OFB_IP_ECN:
		return decoded[IPECN](hdr)
	case OFPXMT_OFB_IP_PROTO:
		return decoded[IPProto](hdr)
	case OFPXMT_OFB_IPV4_SRC:
		return decoded[IPv4Src](hdr)
	case OFPXMT_OFB_IPV4_DST:
		return decoded[IPv4Dst](hdr)
	case OFPXMT_OFB_TCP_SRC:
		return decoded[TCPSrc](hdr)
	case OFPXMT_OFB_TCP_DST:
		return decoded[TCPDst](hdr)
	case OFPXMT_OFB_UDP_SRC:
		return decoded[UDPSrc](hdr)
	case OFPXMT_OFB_UDP_DST:
		return decoded[UDPDst](hdr)
	case OFPXMT_OFB_SCTP_SRC:
		return decoded[SCTPSrc](hdr)
	case OFPXMT_OFB_SCTP_DST:
		return decoded[SCTPDst](hdr)
	case OFPXMT_OFB_ICMPV4_TYPE:
		return decoded[ICMPv4Type](hdr)
	case OFPXMT_OFB_ICMPV4_CODE:
		return decoded[ICMPv4Code](hdr)
	case OFPXMT_OFB_ARP_OP:
		return decoded[ARPOp](hdr)
	case OFPXMT_OFB_ARP_SPA:
		return decoded[ARPSpa](hdr)
	case OFPXMT_OFB_ARP_TPA:
		return decoded[ARPTpa](hdr)
	case OFPXMT_OFB_ARP_SHA:
		return decoded[ARPSha](hdr)
	case OFPXMT_OFB_ARP_THA:
		return decoded[ARPTha](hdr)
	case OFPXMT_OFB_IPV6_SRC:
		return decoded[IPv6Src](hdr)
	case OFPXMT_OFB_IPV6_DST:
		return decoded[IPv6Dst](hdr)
	case OFPXMT_OFB_IPV6_FLABEL:
		return decoded[IPv6FLabel](hdr)
	case OFPXMT_OFB_ICMPV6_TYPE:
		return decoded[ICMPv6Type](hdr)
	case OFPXMT_OFB_ICMPV6_CODE:
		return decoded[ICMPv6Code](hdr)
	case OFPXMT_OFB_IPV6_ND_TARGET:
		return decoded[IPv6NDTarget](hdr)
	case OFPXMT_OFB_IPV6_ND_SLL:
		return decoded[IPv6NDSll](hdr)
	case OFPXMT_OFB_IPV6_ND_TLL:
		return decoded[IPv6NDTll](hdr)
	case OFPXMT_OFB_MPLS_LABEL:
		return decoded[MPLSLabel](hdr)
	case OFPXMT_OFB_MPLS_TC:
		return decoded[MPLSTC](hdr)
	case OFPXMT_OFB_MPLS_BOS:
		return decoded[MPLSBoS](hdr)
	case OFPXMT_OFB_PBB_ISID:
		return decoded[PBBISID](hdr)
	case OFPXMT_OFB_TUNNEL_ID:
		return decoded[TunnelID](hdr)
	case OFPXMT_OFB_IPV6_EXTHDR:
		return decoded[IPv6ExtHdr](hdr)
	case OFPXMT_OFB_PBB_UCA:
		return decoded[PBBUCA](hdr)
	case OFPXMT_OFB_TCP_FLAGS:
		return decoded[TCPFlags](hdr)
	case OFPXMT_OFB_ACTSET_OUTPUT:
		return decoded[ActsetOutput](hdr)
	case OFPXMT_OFB_PACKET_TYPE:
		return decoded[PacketType](hdr)
	}
	return nil, errors.Wrapf(ofpkt.ErrBadOxmField, "field %d", hdr.Field())
}

package oxm

import (
	"net"

	"github.com/google/gopacket/layers"
)

type (
	inPortTag       struct{}
	inPhyPortTag    struct{}
	metadataTag     struct{}
	ethDstTag       struct{}
	ethSrcTag       struct{}
	ethTypeTag      struct{}
	vlanVidTag      struct{}
	vlanPcpTag      struct{}
	ipDscpTag       struct{}
	ipEcnTag        struct{}
	ipProtoTag      struct{}
	ipv4SrcTag      struct{}
	ipv4DstTag      struct{}
	tcpSrcTag       struct{}
	tcpDstTag       struct{}
	udpSrcTag       struct{}
	udpDstTag       struct{}
	sctpSrcTag      struct{}
	sctpDstTag      struct{}
	icmpv4TypeTag   struct{}
	icmpv4CodeTag   struct{}
	arpOpTag        struct{}
	arpSpaTag       struct{}
	arpTpaTag       struct{}
	arpShaTag       struct{}
	arpThaTag       struct{}
	ipv6SrcTag      struct{}
	ipv6DstTag      struct{}
	ipv6FlabelTag   struct{}
	icmpv6TypeTag   struct{}
	icmpv6CodeTag   struct{}
	ipv6NdTargetTag struct{}
	ipv6NdSllTag    struct{}
	ipv6NdTllTag    struct{}
	mplsLabelTag    struct{}
	mplsTcTag       struct{}
	mplsBosTag      struct{}
	pbbIsidTag      struct{}
	tunnelIdTag     struct{}
	ipv6ExthdrTag   struct{}
	pbbUcaTag       struct{}
	tcpFlagsTag     struct{}
	actsetOutputTag struct{}
	packetTypeTag   struct{}
)

func (inPortTag) code() uint8       { return OFPXMT_OFB_IN_PORT }
func (inPhyPortTag) code() uint8    { return OFPXMT_OFB_IN_PHY_PORT }
func (metadataTag) code() uint8     { return OFPXMT_OFB_METADATA }
func (ethDstTag) code() uint8       { return OFPXMT_OFB_ETH_DST }
func (ethSrcTag) code() uint8       { return OFPXMT_OFB_ETH_SRC }
func (ethTypeTag) code() uint8      { return OFPXMT_OFB_ETH_TYPE }
func (vlanVidTag) code() uint8      { return OFPXMT_OFB_VLAN_VID }
func (vlanPcpTag) code() uint8      { return OFPXMT_OFB_VLAN_PCP }
func (ipDscpTag) code() uint8       { return OFPXMT_OFB_IP_DSCP }
func (ipEcnTag) code() uint8        { return OFPXMT_OFB_IP_ECN }
func (ipProtoTag) code() uint8      { return OFPXMT_OFB_IP_PROTO }
func (ipv4SrcTag) code() uint8      { return OFPXMT_OFB_IPV4_SRC }
func (ipv4DstTag) code() uint8      { return OFPXMT_OFB_IPV4_DST }
func (tcpSrcTag) code() uint8       { return OFPXMT_OFB_TCP_SRC }
func (tcpDstTag) code() uint8       { return OFPXMT_OFB_TCP_DST }
func (udpSrcTag) code() uint8       { return OFPXMT_OFB_UDP_SRC }
func (udpDstTag) code() uint8       { return OFPXMT_OFB_UDP_DST }
func (sctpSrcTag) code() uint8      { return OFPXMT_OFB_SCTP_SRC }
func (sctpDstTag) code() uint8      { return OFPXMT_OFB_SCTP_DST }
func (icmpv4TypeTag) code() uint8   { return OFPXMT_OFB_ICMPV4_TYPE }
func (icmpv4CodeTag) code() uint8   { return OFPXMT_OFB_ICMPV4_CODE }
func (arpOpTag) code() uint8        { return OFPXMT_OFB_ARP_OP }
func (arpSpaTag) code() uint8       { return OFPXMT_OFB_ARP_SPA }
func (arpTpaTag) code() uint8       { return OFPXMT_OFB_ARP_TPA }
func (arpShaTag) code() uint8       { return OFPXMT_OFB_ARP_SHA }
func (arpThaTag) code() uint8       { return OFPXMT_OFB_ARP_THA }
func (ipv6SrcTag) code() uint8      { return OFPXMT_OFB_IPV6_SRC }
func (ipv6DstTag) code() uint8      { return OFPXMT_OFB_IPV6_DST }
func (ipv6FlabelTag) code() uint8   { return OFPXMT_OFB_IPV6_FLABEL }
func (icmpv6TypeTag) code() uint8   { return OFPXMT_OFB_ICMPV6_TYPE }
func (icmpv6CodeTag) code() uint8   { return OFPXMT_OFB_ICMPV6_CODE }
func (ipv6NdTargetTag) code() uint8 { return OFPXMT_OFB_IPV6_ND_TARGET }
func (ipv6NdSllTag) code() uint8    { return OFPXMT_OFB_IPV6_ND_SLL }
func (ipv6NdTllTag) code() uint8    { return OFPXMT_OFB_IPV6_ND_TLL }
func (mplsLabelTag) code() uint8    { return OFPXMT_OFB_MPLS_LABEL }
func (mplsTcTag) code() uint8       { return OFPXMT_OFB_MPLS_TC }
func (mplsBosTag) code() uint8      { return OFPXMT_OFB_MPLS_BOS }
func (pbbIsidTag) code() uint8      { return OFPXMT_OFB_PBB_ISID }
func (tunnelIdTag) code() uint8     { return OFPXMT_OFB_TUNNEL_ID }
func (ipv6ExthdrTag) code() uint8   { return OFPXMT_OFB_IPV6_EXTHDR }
func (pbbUcaTag) code() uint8       { return OFPXMT_OFB_PBB_UCA }
func (tcpFlagsTag) code() uint8     { return OFPXMT_OFB_TCP_FLAGS }
func (actsetOutputTag) code() uint8 { return OFPXMT_OFB_ACTSET_OUTPUT }
func (packetTypeTag) code() uint8   { return OFPXMT_OFB_PACKET_TYPE }

// Basic class fields.
type (
	InPort       = Scalar[PortNo, inPortTag]
	InPhyPort    = Scalar[PortNo, inPhyPortTag]
	Metadata     = Masked[uint64, metadataTag]
	EthDst       = Addr[[6]byte, ethDstTag]
	EthSrc       = Addr[[6]byte, ethSrcTag]
	EthType      = Scalar[layers.EthernetType, ethTypeTag]
	VlanVID      = Masked[uint16, vlanVidTag]
	VlanPCP      = Scalar[uint8, vlanPcpTag]
	IPDSCP       = Scalar[uint8, ipDscpTag]
	IPECN        = Scalar[uint8, ipEcnTag]
	IPProto      = Scalar[layers.IPProtocol, ipProtoTag]
	IPv4Src      = Addr[[4]byte, ipv4SrcTag]
	IPv4Dst      = Addr[[4]byte, ipv4DstTag]
	TCPSrc       = Scalar[layers.TCPPort, tcpSrcTag]
	TCPDst       = Scalar[layers.TCPPort, tcpDstTag]
	UDPSrc       = Scalar[layers.UDPPort, udpSrcTag]
	UDPDst       = Scalar[layers.UDPPort, udpDstTag]
	SCTPSrc      = Scalar[layers.SCTPPort, sctpSrcTag]
	SCTPDst      = Scalar[layers.SCTPPort, sctpDstTag]
	ICMPv4Type   = Scalar[uint8, icmpv4TypeTag]
	ICMPv4Code   = Scalar[uint8, icmpv4CodeTag]
	ARPOp        = Scalar[uint16, arpOpTag]
	ARPSpa       = Addr[[4]byte, arpSpaTag]
	ARPTpa       = Addr[[4]byte, arpTpaTag]
	ARPSha       = Addr[[6]byte, arpShaTag]
	ARPTha       = Addr[[6]byte, arpThaTag]
	IPv6Src      = Addr[[16]byte, ipv6SrcTag]
	IPv6Dst      = Addr[[16]byte, ipv6DstTag]
	IPv6FLabel   = Masked[uint32, ipv6FlabelTag]
	ICMPv6Type   = Scalar[uint8, icmpv6TypeTag]
	ICMPv6Code   = Scalar[uint8, icmpv6CodeTag]
	IPv6NDTarget = FixedAddr[[16]byte, ipv6NdTargetTag]
	IPv6NDSll    = FixedAddr[[6]byte, ipv6NdSllTag]
	IPv6NDTll    = FixedAddr[[6]byte, ipv6NdTllTag]
	MPLSLabel    = Scalar[uint32, mplsLabelTag]
	MPLSTC       = Scalar[uint8, mplsTcTag]
	MPLSBoS      = Scalar[uint8, mplsBosTag]
	PBBISID      = Masked[uint32, pbbIsidTag] // 3 bytes on the wire
	TunnelID     = Masked[uint64, tunnelIdTag]
	IPv6ExtHdr   = Masked[uint16, ipv6ExthdrTag]
	PBBUCA       = Scalar[uint8, pbbUcaTag]
	TCPFlags     = Masked[uint16, tcpFlagsTag]
	ActsetOutput = Scalar[PortNo, actsetOutputTag]
	PacketType   = Scalar[uint32, packetTypeTag]
)

func scalar[T Unsigned, K fieldTag](v T) Scalar[T, K] {
	var f Scalar[T, K]
	f.SetValue(v)
	return f
}

func masked[T Unsigned, K fieldTag](v T) Masked[T, K] {
	var f Masked[T, K]
	f.SetValue(v)
	return f
}

func maskedWith[T Unsigned, K fieldTag](v, m T) Masked[T, K] {
	f := masked[T, K](v)
	f.SetMask(m)
	return f
}

func addr[A Address, K fieldTag](v []byte) Addr[A, K] {
	var f Addr[A, K]
	f.SetValue(bytesAddr[A](v))
	return f
}

func addrWith[A Address, K fieldTag](v, m []byte) Addr[A, K] {
	f := addr[A, K](v)
	f.SetMask(bytesAddr[A](m))
	return f
}

func fixedAddr[A Address, K fieldTag](v []byte) FixedAddr[A, K] {
	var f FixedAddr[A, K]
	f.SetValue(bytesAddr[A](v))
	return f
}

func NewInPort(port PortNo) InPort {
	return scalar[PortNo, inPortTag](port)
}

func NewInPhyPort(port PortNo) InPhyPort {
	return scalar[PortNo, inPhyPortTag](port)
}

func NewMetadata(v uint64) Metadata {
	return masked[uint64, metadataTag](v)
}

func NewMetadataMasked(v, mask uint64) Metadata {
	return maskedWith[uint64, metadataTag](v, mask)
}

func NewEthDst(hw net.HardwareAddr) EthDst {
	return addr[[6]byte, ethDstTag](hw)
}

func NewEthDstMasked(hw, mask net.HardwareAddr) EthDst {
	return addrWith[[6]byte, ethDstTag](hw, mask)
}

func NewEthSrc(hw net.HardwareAddr) EthSrc {
	return addr[[6]byte, ethSrcTag](hw)
}

func NewEthSrcMasked(hw, mask net.HardwareAddr) EthSrc {
	return addrWith[[6]byte, ethSrcTag](hw, mask)
}

func NewEthType(t layers.EthernetType) EthType {
	return scalar[layers.EthernetType, ethTypeTag](t)
}

// NewVlanVID keeps the low 13 bits: the 12-bit id plus OFPVID_PRESENT.
func NewVlanVID(vid uint16) VlanVID {
	return masked[uint16, vlanVidTag](vid)
}

func NewVlanVIDMasked(vid, mask uint16) VlanVID {
	return maskedWith[uint16, vlanVidTag](vid, mask)
}

func NewVlanPCP(pcp uint8) VlanPCP {
	return scalar[uint8, vlanPcpTag](pcp)
}

func NewIPDSCP(dscp uint8) IPDSCP {
	return scalar[uint8, ipDscpTag](dscp)
}

func NewIPECN(ecn uint8) IPECN {
	return scalar[uint8, ipEcnTag](ecn)
}

func NewIPProto(proto layers.IPProtocol) IPProto {
	return scalar[layers.IPProtocol, ipProtoTag](proto)
}

func NewIPv4Src(ip net.IP) IPv4Src {
	return addr[[4]byte, ipv4SrcTag](ip.To4())
}

func NewIPv4SrcMasked(ip net.IP, mask net.IPMask) IPv4Src {
	return addrWith[[4]byte, ipv4SrcTag](ip.To4(), ipv4Mask(mask))
}

func NewIPv4Dst(ip net.IP) IPv4Dst {
	return addr[[4]byte, ipv4DstTag](ip.To4())
}

func NewIPv4DstMasked(ip net.IP, mask net.IPMask) IPv4Dst {
	return addrWith[[4]byte, ipv4DstTag](ip.To4(), ipv4Mask(mask))
}

func NewTCPSrc(port layers.TCPPort) TCPSrc {
	return scalar[layers.TCPPort, tcpSrcTag](port)
}

func NewTCPDst(port layers.TCPPort) TCPDst {
	return scalar[layers.TCPPort, tcpDstTag](port)
}

func NewUDPSrc(port layers.UDPPort) UDPSrc {
	return scalar[layers.UDPPort, udpSrcTag](port)
}

func NewUDPDst(port layers.UDPPort) UDPDst {
	return scalar[layers.UDPPort, udpDstTag](port)
}

func NewSCTPSrc(port layers.SCTPPort) SCTPSrc {
	return scalar[layers.SCTPPort, sctpSrcTag](port)
}

func NewSCTPDst(port layers.SCTPPort) SCTPDst {
	return scalar[layers.SCTPPort, sctpDstTag](port)
}

func NewICMPv4Type(t uint8) ICMPv4Type {
	return scalar[uint8, icmpv4TypeTag](t)
}

func NewICMPv4Code(c uint8) ICMPv4Code {
	return scalar[uint8, icmpv4CodeTag](c)
}

func NewARPOp(op uint16) ARPOp {
	return scalar[uint16, arpOpTag](op)
}

func NewARPSpa(ip net.IP) ARPSpa {
	return addr[[4]byte, arpSpaTag](ip.To4())
}

func NewARPSpaMasked(ip net.IP, mask net.IPMask) ARPSpa {
	return addrWith[[4]byte, arpSpaTag](ip.To4(), ipv4Mask(mask))
}

func NewARPTpa(ip net.IP) ARPTpa {
	return addr[[4]byte, arpTpaTag](ip.To4())
}

func NewARPTpaMasked(ip net.IP, mask net.IPMask) ARPTpa {
	return addrWith[[4]byte, arpTpaTag](ip.To4(), ipv4Mask(mask))
}

func NewARPSha(hw net.HardwareAddr) ARPSha {
	return addr[[6]byte, arpShaTag](hw)
}

func NewARPShaMasked(hw, mask net.HardwareAddr) ARPSha {
	return addrWith[[6]byte, arpShaTag](hw, mask)
}

func NewARPTha(hw net.HardwareAddr) ARPTha {
	return addr[[6]byte, arpThaTag](hw)
}

func NewARPThaMasked(hw, mask net.HardwareAddr) ARPTha {
	return addrWith[[6]byte, arpThaTag](hw, mask)
}

func NewIPv6Src(ip net.IP) IPv6Src {
	return addr[[16]byte, ipv6SrcTag](ip.To16())
}

func NewIPv6SrcMasked(ip net.IP, mask net.IPMask) IPv6Src {
	return addrWith[[16]byte, ipv6SrcTag](ip.To16(), mask)
}

func NewIPv6Dst(ip net.IP) IPv6Dst {
	return addr[[16]byte, ipv6DstTag](ip.To16())
}

func NewIPv6DstMasked(ip net.IP, mask net.IPMask) IPv6Dst {
	return addrWith[[16]byte, ipv6DstTag](ip.To16(), mask)
}

func NewIPv6FLabel(label uint32) IPv6FLabel {
	return masked[uint32, ipv6FlabelTag](label)
}

func NewIPv6FLabelMasked(label, mask uint32) IPv6FLabel {
	return maskedWith[uint32, ipv6FlabelTag](label, mask)
}

func NewICMPv6Type(t uint8) ICMPv6Type {
	return scalar[uint8, icmpv6TypeTag](t)
}

func NewICMPv6Code(c uint8) ICMPv6Code {
	return scalar[uint8, icmpv6CodeTag](c)
}

func NewIPv6NDTarget(ip net.IP) IPv6NDTarget {
	return fixedAddr[[16]byte, ipv6NdTargetTag](ip.To16())
}

func NewIPv6NDSll(hw net.HardwareAddr) IPv6NDSll {
	return fixedAddr[[6]byte, ipv6NdSllTag](hw)
}

func NewIPv6NDTll(hw net.HardwareAddr) IPv6NDTll {
	return fixedAddr[[6]byte, ipv6NdTllTag](hw)
}

func NewMPLSLabel(label uint32) MPLSLabel {
	return scalar[uint32, mplsLabelTag](label)
}

func NewMPLSTC(tc uint8) MPLSTC {
	return scalar[uint8, mplsTcTag](tc)
}

func NewMPLSBoS(bos uint8) MPLSBoS {
	return scalar[uint8, mplsBosTag](bos)
}

func NewPBBISID(isid uint32) PBBISID {
	return masked[uint32, pbbIsidTag](isid)
}

func NewPBBISIDMasked(isid, mask uint32) PBBISID {
	return maskedWith[uint32, pbbIsidTag](isid, mask)
}

func NewTunnelID(id uint64) TunnelID {
	return masked[uint64, tunnelIdTag](id)
}

func NewTunnelIDMasked(id, mask uint64) TunnelID {
	return maskedWith[uint64, tunnelIdTag](id, mask)
}

func NewIPv6ExtHdr(flags uint16) IPv6ExtHdr {
	return masked[uint16, ipv6ExthdrTag](flags)
}

func NewIPv6ExtHdrMasked(flags, mask uint16) IPv6ExtHdr {
	return maskedWith[uint16, ipv6ExthdrTag](flags, mask)
}

func NewPBBUCA(uca bool) PBBUCA {
	var v uint8
	if uca {
		v = 1
	}
	return scalar[uint8, pbbUcaTag](v)
}

func NewTCPFlags(flags uint16) TCPFlags {
	return masked[uint16, tcpFlagsTag](flags)
}

func NewTCPFlagsMasked(flags, mask uint16) TCPFlags {
	return maskedWith[uint16, tcpFlagsTag](flags, mask)
}

func NewActsetOutput(port PortNo) ActsetOutput {
	return scalar[PortNo, actsetOutputTag](port)
}

// NewPacketType packs a namespace and a namespace-specific type, as in
// OFPHTN_ONF:0 for Ethernet.
func NewPacketType(ns, typ uint16) PacketType {
	return scalar[uint32, packetTypeTag](uint32(ns)<<16 | uint32(typ))
}

func ipv4Mask(mask net.IPMask) []byte {
	if len(mask) == net.IPv6len {
		return mask[12:]
	}
	return mask
}

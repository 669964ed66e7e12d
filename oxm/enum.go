package oxm

// OXM classes.
const (
	OFPXMC_NXM_0          = 0x0000
	OFPXMC_NXM_1          = 0x0001
	OFPXMC_OPENFLOW_BASIC = 0x8000
	OFPXMC_PACKET_REGS    = 0x8001
	OFPXMC_EXPERIMENTER   = 0xffff
)

// Basic class field codes. 40 is unassigned.
const (
	OFPXMT_OFB_IN_PORT = iota
	OFPXMT_OFB_IN_PHY_PORT
	OFPXMT_OFB_METADATA
	OFPXMT_OFB_ETH_DST
	OFPXMT_OFB_ETH_SRC
	OFPXMT_OFB_ETH_TYPE
	OFPXMT_OFB_VLAN_VID
	OFPXMT_OFB_VLAN_PCP
	OFPXMT_OFB_IP_DSCP
	OFPXMT_OFB_IP_ECN
	OFPXMT_OFB_IP_PROTO
	OFPXMT_OFB_IPV4_SRC
	OFPXMT_OFB_IPV4_DST
	OFPXMT_OFB_TCP_SRC
	OFPXMT_OFB_TCP_DST
	OFPXMT_OFB_UDP_SRC
	OFPXMT_OFB_UDP_DST
	OFPXMT_OFB_SCTP_SRC
	OFPXMT_OFB_SCTP_DST
	OFPXMT_OFB_ICMPV4_TYPE
	OFPXMT_OFB_ICMPV4_CODE
	OFPXMT_OFB_ARP_OP
	OFPXMT_OFB_ARP_SPA
	OFPXMT_OFB_ARP_TPA
	OFPXMT_OFB_ARP_SHA
	OFPXMT_OFB_ARP_THA
	OFPXMT_OFB_IPV6_SRC
	OFPXMT_OFB_IPV6_DST
	OFPXMT_OFB_IPV6_FLABEL
	OFPXMT_OFB_ICMPV6_TYPE
	OFPXMT_OFB_ICMPV6_CODE
	OFPXMT_OFB_IPV6_ND_TARGET
	OFPXMT_OFB_IPV6_ND_SLL
	OFPXMT_OFB_IPV6_ND_TLL
	OFPXMT_OFB_MPLS_LABEL
	OFPXMT_OFB_MPLS_TC
	OFPXMT_OFB_MPLS_BOS
	OFPXMT_OFB_PBB_ISID
	OFPXMT_OFB_TUNNEL_ID
	OFPXMT_OFB_IPV6_EXTHDR
	_
	OFPXMT_OFB_PBB_UCA
	OFPXMT_OFB_TCP_FLAGS
	OFPXMT_OFB_ACTSET_OUTPUT
	OFPXMT_OFB_PACKET_TYPE
)

// Match types.
const (
	OFPMT_STANDARD = 0
	OFPMT_OXM      = 1
)

// Reserved port numbers.
const (
	OFPP_MAX        PortNo = 0xffffff00
	OFPP_UNSET      PortNo = 0xfffffff7
	OFPP_IN_PORT    PortNo = 0xfffffff8
	OFPP_TABLE      PortNo = 0xfffffff9
	OFPP_NORMAL     PortNo = 0xfffffffa
	OFPP_FLOOD      PortNo = 0xfffffffb
	OFPP_ALL        PortNo = 0xfffffffc
	OFPP_CONTROLLER PortNo = 0xfffffffd
	OFPP_LOCAL      PortNo = 0xfffffffe
	OFPP_ANY        PortNo = 0xffffffff
)

const (
	OFPVID_PRESENT = 0x1000
	OFPVID_NONE    = 0x0000
)

const (
	OFPIEH_NONEXT = 1 << iota
	OFPIEH_ESP
	OFPIEH_AUTH
	OFPIEH_DEST
	OFPIEH_FRAG
	OFPIEH_ROUTER
	OFPIEH_HOP
	OFPIEH_UNREP
	OFPIEH_UNSEQ
)

// TCP flag bits as carried by tcp_flags.
const (
	TCP_FLAG_FIN = 1 << iota
	TCP_FLAG_SYN
	TCP_FLAG_RST
	TCP_FLAG_PSH
	TCP_FLAG_ACK
	TCP_FLAG_URG
	TCP_FLAG_ECE
	TCP_FLAG_CWR
	TCP_FLAG_NS
)

// packet_type namespaces.
const (
	OFPHTN_ONF         = 0
	OFPHTN_ETHERTYPE   = 1
	OFPHTN_IP_PROTO    = 2
	OFPHTN_UDP_TCP     = 3
	OFPHTN_IPV4_OPTION = 4
)

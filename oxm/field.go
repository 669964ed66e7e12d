package oxm

import (
	"fmt"
	"net"
	"strconv"

	"github.com/little-dude/ofpkt"
	"github.com/little-dude/ofpkt/view"
	"github.com/pkg/errors"
)

// FlowMatchField is one OXM field of the basic class. The set of
// implementations is closed: the engine types below, instantiated once per
// field code (InPort, EthDst, VlanVID, ...).
type FlowMatchField interface {
	Code() uint8
	HasMask() bool
	// ValueLen is the payload length: the value, plus the mask if any.
	ValueLen() int
	BufferLen() int
	Emit(buf []byte) error
	String() string

	emitValue(b view.Bytes)
}

type valueFormat uint8

const (
	formatDec valueFormat = iota
	formatHex
	formatPort
	formatPacketType
	formatMAC
	formatIP
)

type fieldInfo struct {
	name     string
	length   int // value length, mask excluded
	maskable bool
	bits     uint64 // significant bits; 0 means the whole width
	format   valueFormat
}

var basicFields = [...]fieldInfo{
	OFPXMT_OFB_IN_PORT:        {"in_port", 4, false, 0, formatPort},
	OFPXMT_OFB_IN_PHY_PORT:    {"in_phy_port", 4, false, 0, formatPort},
	OFPXMT_OFB_METADATA:       {"metadata", 8, true, 0, formatHex},
	OFPXMT_OFB_ETH_DST:        {"eth_dst", 6, true, 0, formatMAC},
	OFPXMT_OFB_ETH_SRC:        {"eth_src", 6, true, 0, formatMAC},
	OFPXMT_OFB_ETH_TYPE:       {"eth_type", 2, false, 0, formatHex},
	OFPXMT_OFB_VLAN_VID:       {"vlan_vid", 2, true, 0x1fff, formatHex},
	OFPXMT_OFB_VLAN_PCP:       {"vlan_pcp", 1, false, 0x7, formatDec},
	OFPXMT_OFB_IP_DSCP:        {"ip_dscp", 1, false, 0x3f, formatHex},
	OFPXMT_OFB_IP_ECN:         {"ip_ecn", 1, false, 0x3, formatHex},
	OFPXMT_OFB_IP_PROTO:       {"ip_proto", 1, false, 0, formatDec},
	OFPXMT_OFB_IPV4_SRC:       {"ipv4_src", 4, true, 0, formatIP},
	OFPXMT_OFB_IPV4_DST:       {"ipv4_dst", 4, true, 0, formatIP},
	OFPXMT_OFB_TCP_SRC:        {"tcp_src", 2, false, 0, formatDec},
	OFPXMT_OFB_TCP_DST:        {"tcp_dst", 2, false, 0, formatDec},
	OFPXMT_OFB_UDP_SRC:        {"udp_src", 2, false, 0, formatDec},
	OFPXMT_OFB_UDP_DST:        {"udp_dst", 2, false, 0, formatDec},
	OFPXMT_OFB_SCTP_SRC:       {"sctp_src", 2, false, 0, formatDec},
	OFPXMT_OFB_SCTP_DST:       {"sctp_dst", 2, false, 0, formatDec},
	OFPXMT_OFB_ICMPV4_TYPE:    {"icmpv4_type", 1, false, 0, formatDec},
	OFPXMT_OFB_ICMPV4_CODE:    {"icmpv4_code", 1, false, 0, formatDec},
	OFPXMT_OFB_ARP_OP:         {"arp_op", 2, false, 0, formatDec},
	OFPXMT_OFB_ARP_SPA:        {"arp_spa", 4, true, 0, formatIP},
	OFPXMT_OFB_ARP_TPA:        {"arp_tpa", 4, true, 0, formatIP},
	OFPXMT_OFB_ARP_SHA:        {"arp_sha", 6, true, 0, formatMAC},
	OFPXMT_OFB_ARP_THA:        {"arp_tha", 6, true, 0, formatMAC},
	OFPXMT_OFB_IPV6_SRC:       {"ipv6_src", 16, true, 0, formatIP},
	OFPXMT_OFB_IPV6_DST:       {"ipv6_dst", 16, true, 0, formatIP},
	OFPXMT_OFB_IPV6_FLABEL:    {"ipv6_flabel", 4, true, 0xfffff, formatHex},
	OFPXMT_OFB_ICMPV6_TYPE:    {"icmpv6_type", 1, false, 0, formatDec},
	OFPXMT_OFB_ICMPV6_CODE:    {"icmpv6_code", 1, false, 0, formatDec},
	OFPXMT_OFB_IPV6_ND_TARGET: {"ipv6_nd_target", 16, false, 0, formatIP},
	OFPXMT_OFB_IPV6_ND_SLL:    {"ipv6_nd_sll", 6, false, 0, formatMAC},
	OFPXMT_OFB_IPV6_ND_TLL:    {"ipv6_nd_tll", 6, false, 0, formatMAC},
	OFPXMT_OFB_MPLS_LABEL:     {"mpls_label", 4, false, 0xfffff, formatHex},
	OFPXMT_OFB_MPLS_TC:        {"mpls_tc", 1, false, 0x7, formatDec},
	OFPXMT_OFB_MPLS_BOS:       {"mpls_bos", 1, false, 0x1, formatDec},
	OFPXMT_OFB_PBB_ISID:       {"pbb_isid", 3, true, 0xffffff, formatHex},
	OFPXMT_OFB_TUNNEL_ID:      {"tunnel_id", 8, true, 0, formatHex},
	OFPXMT_OFB_IPV6_EXTHDR:    {"ipv6_exthdr", 2, true, 0x1ff, formatHex},
	OFPXMT_OFB_PBB_UCA:        {"pbb_uca", 1, false, 0x1, formatDec},
	OFPXMT_OFB_TCP_FLAGS:      {"tcp_flags", 2, true, 0xfff, formatHex},
	OFPXMT_OFB_ACTSET_OUTPUT:  {"actset_output", 4, false, 0, formatPort},
	OFPXMT_OFB_PACKET_TYPE:    {"packet_type", 4, false, 0, formatPacketType},
}

func lookupField(code uint8) (*fieldInfo, bool) {
	if int(code) >= len(basicFields) || basicFields[code].name == "" {
		return nil, false
	}
	return &basicFields[code], true
}

func lookupName(name string) (uint8, *fieldInfo, bool) {
	for code := range basicFields {
		if basicFields[code].name == name {
			return uint8(code), &basicFields[code], true
		}
	}
	return 0, nil, false
}

// FieldName returns the text name of a basic field code, or "" when the code
// is unassigned.
func FieldName(code uint8) string {
	if info, ok := lookupField(code); ok {
		return info.name
	}
	return ""
}

type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

type Address interface {
	~[4]byte | ~[6]byte | ~[16]byte
}

// fieldTag binds an engine instantiation to its row in basicFields.
type fieldTag interface {
	code() uint8
}

func infoOf[K fieldTag]() *fieldInfo {
	var k K
	return &basicFields[k.code()]
}

func truncate[T Unsigned](v T, bits uint64) T {
	if bits == 0 {
		return v
	}
	return v & T(bits)
}

func checkLayout(hdr TLV, info *fieldInfo, maskable bool) error {
	if hdr.HasMask() && !maskable {
		return errors.Wrapf(ofpkt.ErrMalformed, "%s is not maskable", info.name)
	}
	want := info.length
	if hdr.HasMask() {
		want *= 2
	}
	if hdr.Length() != want {
		return errors.Wrapf(ofpkt.ErrMalformed, "%s length %d, want %d", info.name, hdr.Length(), want)
	}
	return nil
}

func emitField(f FlowMatchField, buf []byte) error {
	if err := ofpkt.CheckEmit(f, buf); err != nil {
		return errors.Wrap(err, FieldName(f.Code()))
	}
	writeHeader(buf, OFPXMC_OPENFLOW_BASIC, f.Code(), f.HasMask(), f.ValueLen())
	f.emitValue(view.New(buf[TLVHeaderLen:f.BufferLen()]))
	return nil
}

func formatUint(info *fieldInfo, v uint64) string {
	switch info.format {
	case formatPort:
		return PortNo(v).String()
	case formatHex:
		return fmt.Sprintf("0x%x", v)
	case formatPacketType:
		return fmt.Sprintf("0x%x:0x%x", v>>16, v&0xffff)
	default:
		return strconv.FormatUint(v, 10)
	}
}

func formatAddr(info *fieldInfo, b []byte) string {
	if info.format == formatMAC {
		return net.HardwareAddr(b).String()
	}
	return net.IP(b).String()
}

// Scalar is an integer field that cannot be masked. Values are truncated
// to the field's significant bits on every write.
type Scalar[T Unsigned, K fieldTag] struct {
	value T
}

func (self Scalar[T, K]) Code() uint8 {
	var k K
	return k.code()
}

func (self Scalar[T, K]) HasMask() bool {
	return false
}

func (self Scalar[T, K]) ValueLen() int {
	return infoOf[K]().length
}

func (self Scalar[T, K]) BufferLen() int {
	return TLVHeaderLen + self.ValueLen()
}

func (self Scalar[T, K]) Value() T {
	return self.value
}

func (self *Scalar[T, K]) SetValue(v T) {
	self.value = truncate(v, infoOf[K]().bits)
}

func (self Scalar[T, K]) Emit(buf []byte) error {
	return emitField(self, buf)
}

func (self Scalar[T, K]) emitValue(b view.Bytes) {
	b.PutUint(view.Rest(0), uint64(self.value))
}

func (self *Scalar[T, K]) decode(hdr TLV) error {
	if err := checkLayout(hdr, infoOf[K](), false); err != nil {
		return err
	}
	self.SetValue(T(view.Bytes(hdr.Value()).Uint(view.Rest(0))))
	return nil
}

func (self Scalar[T, K]) String() string {
	info := infoOf[K]()
	return info.name + "=" + formatUint(info, uint64(self.value))
}

// Masked is an integer field with an optional mask. Value and mask are both
// truncated to the field's significant bits.
type Masked[T Unsigned, K fieldTag] struct {
	value   T
	mask    T
	hasMask bool
}

func (self Masked[T, K]) Code() uint8 {
	var k K
	return k.code()
}

func (self Masked[T, K]) HasMask() bool {
	return self.hasMask
}

func (self Masked[T, K]) ValueLen() int {
	if self.hasMask {
		return 2 * infoOf[K]().length
	}
	return infoOf[K]().length
}

func (self Masked[T, K]) BufferLen() int {
	return TLVHeaderLen + self.ValueLen()
}

func (self Masked[T, K]) Value() T {
	return self.value
}

func (self *Masked[T, K]) SetValue(v T) {
	self.value = truncate(v, infoOf[K]().bits)
}

func (self Masked[T, K]) Mask() (T, bool) {
	return self.mask, self.hasMask
}

func (self *Masked[T, K]) SetMask(m T) {
	self.mask = truncate(m, infoOf[K]().bits)
	self.hasMask = true
}

func (self *Masked[T, K]) UnsetMask() {
	self.mask = 0
	self.hasMask = false
}

func (self Masked[T, K]) Emit(buf []byte) error {
	return emitField(self, buf)
}

func (self Masked[T, K]) emitValue(b view.Bytes) {
	n := infoOf[K]().length
	b.PutUint(view.Span(0, n), uint64(self.value))
	if self.hasMask {
		b.PutUint(view.Span(n, n), uint64(self.mask))
	}
}

func (self *Masked[T, K]) decode(hdr TLV) error {
	info := infoOf[K]()
	if err := checkLayout(hdr, info, true); err != nil {
		return err
	}
	p := view.Bytes(hdr.Value())
	self.SetValue(T(p.Uint(view.Span(0, info.length))))
	if hdr.HasMask() {
		self.SetMask(T(p.Uint(view.Span(info.length, info.length))))
	} else {
		self.UnsetMask()
	}
	return nil
}

func (self Masked[T, K]) String() string {
	info := infoOf[K]()
	s := info.name + "=" + formatUint(info, uint64(self.value))
	if self.hasMask {
		s += "/" + formatUint(info, uint64(self.mask))
	}
	return s
}

func addrBytes[A Address](a A) []byte {
	b := make([]byte, len(a))
	for i := range b {
		b[i] = a[i]
	}
	return b
}

func bytesAddr[A Address](b []byte) A {
	var a A
	for i := 0; i < len(a) && i < len(b); i++ {
		a[i] = b[i]
	}
	return a
}

// Addr is a fixed-width address field with an optional arbitrary mask.
type Addr[A Address, K fieldTag] struct {
	value   A
	mask    A
	hasMask bool
}

func (self Addr[A, K]) Code() uint8 {
	var k K
	return k.code()
}

func (self Addr[A, K]) HasMask() bool {
	return self.hasMask
}

func (self Addr[A, K]) ValueLen() int {
	if self.hasMask {
		return 2 * len(self.value)
	}
	return len(self.value)
}

func (self Addr[A, K]) BufferLen() int {
	return TLVHeaderLen + self.ValueLen()
}

func (self Addr[A, K]) Value() A {
	return self.value
}

func (self *Addr[A, K]) SetValue(v A) {
	self.value = v
}

func (self Addr[A, K]) Mask() (A, bool) {
	return self.mask, self.hasMask
}

func (self *Addr[A, K]) SetMask(m A) {
	self.mask = m
	self.hasMask = true
}

func (self *Addr[A, K]) UnsetMask() {
	var zero A
	self.mask = zero
	self.hasMask = false
}

func (self Addr[A, K]) Emit(buf []byte) error {
	return emitField(self, buf)
}

func (self Addr[A, K]) emitValue(b view.Bytes) {
	n := len(self.value)
	b.Copy(view.Span(0, n), addrBytes(self.value))
	if self.hasMask {
		b.Copy(view.Span(n, n), addrBytes(self.mask))
	}
}

func (self *Addr[A, K]) decode(hdr TLV) error {
	info := infoOf[K]()
	if err := checkLayout(hdr, info, true); err != nil {
		return err
	}
	p := hdr.Value()
	self.value = bytesAddr[A](p)
	if hdr.HasMask() {
		self.SetMask(bytesAddr[A](p[info.length:]))
	} else {
		self.UnsetMask()
	}
	return nil
}

func (self Addr[A, K]) String() string {
	info := infoOf[K]()
	s := info.name + "=" + formatAddr(info, addrBytes(self.value))
	if self.hasMask {
		s += "/" + formatAddr(info, addrBytes(self.mask))
	}
	return s
}

// FixedAddr is an address field that cannot be masked.
type FixedAddr[A Address, K fieldTag] struct {
	value A
}

func (self FixedAddr[A, K]) Code() uint8 {
	var k K
	return k.code()
}

func (self FixedAddr[A, K]) HasMask() bool {
	return false
}

func (self FixedAddr[A, K]) ValueLen() int {
	return len(self.value)
}

func (self FixedAddr[A, K]) BufferLen() int {
	return TLVHeaderLen + self.ValueLen()
}

func (self FixedAddr[A, K]) Value() A {
	return self.value
}

func (self *FixedAddr[A, K]) SetValue(v A) {
	self.value = v
}

func (self FixedAddr[A, K]) Emit(buf []byte) error {
	return emitField(self, buf)
}

func (self FixedAddr[A, K]) emitValue(b view.Bytes) {
	b.Copy(view.Rest(0), addrBytes(self.value))
}

func (self *FixedAddr[A, K]) decode(hdr TLV) error {
	if err := checkLayout(hdr, infoOf[K](), false); err != nil {
		return err
	}
	self.value = bytesAddr[A](hdr.Value())
	return nil
}

func (self FixedAddr[A, K]) String() string {
	info := infoOf[K]()
	return info.name + "=" + formatAddr(info, addrBytes(self.value))
}

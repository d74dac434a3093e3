/*
 * Cherry - An OpenFlow Controller
 *
 * Copyright (C) 2015 Samjung Data Service, Inc. All rights reserved.
 * Kitae Kim <superkkt@sds.co.kr>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; either version 2 of the License, or
 * any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License along
 * with this program; if not, write to the Free Software Foundation, Inc.,
 * 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
 */

package openflow

import (
	"bytes"
	"fmt"
	"net"
	"sort"

	"github.com/pkg/errors"
)

type MatchField uint8

// OXM basic class field numbers.
const (
	FieldInPort  MatchField = 0
	FieldEthDst  MatchField = 3
	FieldEthSrc  MatchField = 4
	FieldEthType MatchField = 5
	FieldVLANID  MatchField = 6
	FieldIPProto MatchField = 10
)

func (r MatchField) String() string {
	switch r {
	case FieldInPort:
		return "in_port"
	case FieldEthDst:
		return "eth_dst"
	case FieldEthSrc:
		return "eth_src"
	case FieldEthType:
		return "eth_type"
	case FieldVLANID:
		return "vlan_vid"
	case FieldIPProto:
		return "ip_proto"
	default:
		return fmt.Sprintf("field(%d)", uint8(r))
	}
}

// Match is an immutable set of exact-match fields. The zero value is an empty
// match. All With* methods return a new Match and leave the receiver as is.
type Match struct {
	fields map[MatchField]uint64
}

func NewMatch() Match {
	return Match{}
}

// Get returns the value of the field. ok is false if the field is absent.
func (r Match) Get(field MatchField) (value uint64, ok bool) {
	value, ok = r.fields[field]
	return value, ok
}

func (r Match) Has(field MatchField) bool {
	_, ok := r.fields[field]
	return ok
}

func (r Match) Len() int {
	return len(r.fields)
}

// Fields returns the fields present in the match in ascending order.
func (r Match) Fields() []MatchField {
	fields := make([]MatchField, 0, len(r.fields))
	for f := range r.fields {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })

	return fields
}

func (r Match) clone() map[MatchField]uint64 {
	v := make(map[MatchField]uint64, len(r.fields)+1)
	for f, val := range r.fields {
		v[f] = val
	}

	return v
}

// With returns a copy of the match with field set to value.
func (r Match) With(field MatchField, value uint64) Match {
	v := r.clone()
	v[field] = value

	return Match{fields: v}
}

// Without returns a copy of the match with field removed.
func (r Match) Without(field MatchField) Match {
	if !r.Has(field) {
		return r
	}

	v := r.clone()
	delete(v, field)
	if len(v) == 0 {
		return Match{}
	}

	return Match{fields: v}
}

// Equal reports whether both matches hold exactly the same fields and values.
func (r Match) Equal(m Match) bool {
	if len(r.fields) != len(m.fields) {
		return false
	}
	for f, val := range r.fields {
		other, ok := m.fields[f]
		if !ok || other != val {
			return false
		}
	}

	return true
}

func (r Match) WithInPort(port Port) Match {
	return r.With(FieldInPort, uint64(port))
}

func (r Match) InPort() (port Port, ok bool) {
	v, ok := r.Get(FieldInPort)
	return Port(v), ok
}

func (r Match) WithVLANID(id VLANID) Match {
	return r.With(FieldVLANID, uint64(id))
}

func (r Match) VLANID() (id VLANID, ok bool) {
	v, ok := r.Get(FieldVLANID)
	return VLANID(v), ok
}

func (r Match) WithEthType(t uint16) Match {
	return r.With(FieldEthType, uint64(t))
}

func (r Match) EthType() (t uint16, ok bool) {
	v, ok := r.Get(FieldEthType)
	return uint16(v), ok
}

func (r Match) WithIPProtocol(p uint8) Match {
	return r.With(FieldIPProto, uint64(p))
}

func (r Match) IPProtocol() (p uint8, ok bool) {
	v, ok := r.Get(FieldIPProto)
	return uint8(v), ok
}

func macToUint64(mac net.HardwareAddr) (uint64, error) {
	if len(mac) != 6 {
		return 0, errors.Wrapf(ErrInvalidMACAddress, "%v", mac)
	}

	var v uint64
	for _, b := range mac {
		v = v<<8 | uint64(b)
	}

	return v, nil
}

func uint64ToMAC(v uint64) net.HardwareAddr {
	mac := make(net.HardwareAddr, 6)
	for i := 5; i >= 0; i-- {
		mac[i] = byte(v)
		v >>= 8
	}

	return mac
}

func (r Match) WithSrcMAC(mac net.HardwareAddr) (Match, error) {
	v, err := macToUint64(mac)
	if err != nil {
		return r, err
	}

	return r.With(FieldEthSrc, v), nil
}

func (r Match) SrcMAC() (mac net.HardwareAddr, ok bool) {
	v, ok := r.Get(FieldEthSrc)
	if !ok {
		return nil, false
	}

	return uint64ToMAC(v), true
}

func (r Match) WithDstMAC(mac net.HardwareAddr) (Match, error) {
	v, err := macToUint64(mac)
	if err != nil {
		return r, err
	}

	return r.With(FieldEthDst, v), nil
}

func (r Match) DstMAC() (mac net.HardwareAddr, ok bool) {
	v, ok := r.Get(FieldEthDst)
	if !ok {
		return nil, false
	}

	return uint64ToMAC(v), true
}

func (r Match) String() string {
	var buf bytes.Buffer
	for i, f := range r.Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		val := r.fields[f]
		switch f {
		case FieldInPort:
			fmt.Fprintf(&buf, "%v=%v", f, Port(val))
		case FieldVLANID:
			fmt.Fprintf(&buf, "%v=%v", f, VLANID(val))
		case FieldEthSrc, FieldEthDst:
			fmt.Fprintf(&buf, "%v=%v", f, uint64ToMAC(val))
		case FieldEthType:
			fmt.Fprintf(&buf, "%v=0x%04x", f, val)
		default:
			fmt.Fprintf(&buf, "%v=%v", f, val)
		}
	}

	return buf.String()
}

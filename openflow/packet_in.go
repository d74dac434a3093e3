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
	"fmt"

	"github.com/pkg/errors"
)

// PacketIn is a packet the switch forwarded up to the controller.
//
// Before OF1.2 the ingress port is an inline field and there is no match. From
// OF1.2 on the ingress port is carried by the match and the inline field is
// absent.
type PacketIn struct {
	header
	bufferID  BufferID
	totalLen  uint16
	inPort    Port
	hasInPort bool
	reason    uint8
	tableID   uint8
	cookie    uint64
	match     Match
	data      []byte
}

func (r PacketIn) BufferID() BufferID {
	return r.bufferID
}

func (r PacketIn) TotalLength() uint16 {
	return r.totalLen
}

// InPort returns the inline ingress port. ok is false when the message
// version does not have the field.
func (r PacketIn) InPort() (port Port, ok bool) {
	return r.inPort, r.hasInPort
}

func (r PacketIn) Reason() uint8 {
	return r.reason
}

func (r PacketIn) TableID() uint8 {
	return r.tableID
}

func (r PacketIn) Cookie() uint64 {
	return r.cookie
}

// Match returns the packet-in match. It is always empty before OF1.2.
func (r PacketIn) Match() Match {
	return r.match
}

func (r PacketIn) Data() []byte {
	return copyBytes(r.data)
}

func (r PacketIn) WithTransactionID(xid uint32) Message {
	r.xid = xid
	return r
}

func (r PacketIn) String() string {
	port := "-"
	if r.hasInPort {
		port = r.inPort.String()
	}

	return fmt.Sprintf("%v buffer_id=%v in_port=%v match=[%v] len=%v", r.header, r.bufferID, port, r.match, len(r.data))
}

// PacketInBuilder assembles a PacketIn. It is a value: every setter returns an
// updated copy. The first error is kept and reported by Build.
type PacketInBuilder struct {
	msg PacketIn
	err error
}

func newPacketInBuilder(version Version, xid uint32) PacketInBuilder {
	return PacketInBuilder{
		msg: PacketIn{
			header:   newHeader(version, TypePacketIn, xid),
			bufferID: NoBuffer,
		},
	}
}

func (r PacketInBuilder) Version() Version {
	return r.msg.version
}

// Error returns the last error.
func (r PacketInBuilder) Error() error {
	return r.err
}

func (r PacketInBuilder) fail(err error) PacketInBuilder {
	if r.err == nil {
		r.err = err
	}

	return r
}

func (r PacketInBuilder) SetBufferID(id BufferID) PacketInBuilder {
	r.msg.bufferID = id
	return r
}

func (r PacketInBuilder) SetInPort(port Port) PacketInBuilder {
	if !r.msg.version.HasPacketInInPort() {
		return r.fail(errors.Wrapf(ErrUnsupportedField, "PACKET_IN in_port on %v", r.msg.version))
	}
	if !r.msg.version.Has32BitPort() {
		if _, err := port.To16(); err != nil {
			return r.fail(err)
		}
	}
	r.msg.inPort = port
	r.msg.hasInPort = true

	return r
}

func (r PacketInBuilder) SetReason(reason uint8) PacketInBuilder {
	r.msg.reason = reason
	return r
}

func (r PacketInBuilder) SetTableID(id uint8) PacketInBuilder {
	r.msg.tableID = id
	return r
}

func (r PacketInBuilder) SetCookie(cookie uint64) PacketInBuilder {
	r.msg.cookie = cookie
	return r
}

func (r PacketInBuilder) SetMatch(match Match) PacketInBuilder {
	if !r.msg.version.HasPacketInMatch() {
		return r.fail(errors.Wrapf(ErrUnsupportedField, "PACKET_IN match on %v", r.msg.version))
	}
	r.msg.match = match

	return r
}

// SetData also sets the total length to the length of data.
func (r PacketInBuilder) SetData(data []byte) PacketInBuilder {
	r.msg.data = copyBytes(data)
	r.msg.totalLen = uint16(len(data))

	return r
}

func (r PacketInBuilder) Build() (PacketIn, error) {
	if r.err != nil {
		return PacketIn{}, r.err
	}
	if r.msg.version.HasPacketInInPort() && !r.msg.hasInPort {
		return PacketIn{}, errors.Wrapf(ErrMissingInPort, "PACKET_IN on %v", r.msg.version)
	}

	return r.msg, nil
}

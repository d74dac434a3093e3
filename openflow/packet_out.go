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
	"strings"

	"github.com/pkg/errors"
)

// PacketOut tells the switch to send a packet out.
//
// Before OF1.5 the ingress port is an inline field. From OF1.5 on it is carried
// by the match.
type PacketOut struct {
	header
	bufferID  BufferID
	inPort    Port
	hasInPort bool
	match     Match
	hasMatch  bool
	actions   []Action
	data      []byte
}

func (r PacketOut) BufferID() BufferID {
	return r.bufferID
}

// InPort returns the inline ingress port. ok is false when the field is absent.
func (r PacketOut) InPort() (port Port, ok bool) {
	return r.inPort, r.hasInPort
}

// Match returns the packet-out match. ok is false when the message has none.
func (r PacketOut) Match() (match Match, ok bool) {
	return r.match, r.hasMatch
}

func (r PacketOut) Actions() []Action {
	return copyActions(r.actions)
}

func (r PacketOut) Data() []byte {
	return copyBytes(r.data)
}

func (r PacketOut) WithTransactionID(xid uint32) Message {
	r.xid = xid
	return r
}

func (r PacketOut) String() string {
	port := "-"
	if r.hasInPort {
		port = r.inPort.String()
	}
	actions := make([]string, len(r.actions))
	for i, v := range r.actions {
		actions[i] = v.String()
	}

	return fmt.Sprintf("%v buffer_id=%v in_port=%v match=[%v] actions=%v len=%v", r.header, r.bufferID, port, r.match, strings.Join(actions, ","), len(r.data))
}

// PacketOutBuilder assembles a PacketOut. It is a value: every setter returns
// an updated copy and never touches the receiver, so a builder can be shared
// by goroutines. The first error is kept and reported by Build.
type PacketOutBuilder struct {
	msg PacketOut
	err error
}

func newPacketOutBuilder(version Version, xid uint32) PacketOutBuilder {
	return PacketOutBuilder{
		msg: PacketOut{
			header:   newHeader(version, TypePacketOut, xid),
			bufferID: NoBuffer,
		},
	}
}

func (r PacketOutBuilder) Version() Version {
	return r.msg.version
}

// Error returns the last error.
func (r PacketOutBuilder) Error() error {
	return r.err
}

func (r PacketOutBuilder) fail(err error) PacketOutBuilder {
	if r.err == nil {
		r.err = err
	}

	return r
}

func (r PacketOutBuilder) BufferID() BufferID {
	return r.msg.bufferID
}

func (r PacketOutBuilder) SetBufferID(id BufferID) PacketOutBuilder {
	r.msg.bufferID = id
	return r
}

func (r PacketOutBuilder) InPort() (port Port, ok bool) {
	return r.msg.InPort()
}

func (r PacketOutBuilder) SetInPort(port Port) PacketOutBuilder {
	if !r.msg.version.HasPacketOutInPort() {
		return r.fail(errors.Wrapf(ErrUnsupportedField, "PACKET_OUT in_port on %v", r.msg.version))
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

func (r PacketOutBuilder) Match() (match Match, ok bool) {
	return r.msg.Match()
}

func (r PacketOutBuilder) SetMatch(match Match) PacketOutBuilder {
	if !r.msg.version.HasPacketOutMatch() {
		return r.fail(errors.Wrapf(ErrUnsupportedField, "PACKET_OUT match on %v", r.msg.version))
	}
	r.msg.match = match
	r.msg.hasMatch = true

	return r
}

func (r PacketOutBuilder) Actions() []Action {
	return r.msg.Actions()
}

func (r PacketOutBuilder) SetActions(actions ...Action) PacketOutBuilder {
	r.msg.actions = copyActions(actions)
	return r
}

func (r PacketOutBuilder) Data() []byte {
	return r.msg.Data()
}

func (r PacketOutBuilder) SetData(data []byte) PacketOutBuilder {
	r.msg.data = copyBytes(data)
	return r
}

func (r PacketOutBuilder) Build() (PacketOut, error) {
	if r.err != nil {
		return PacketOut{}, r.err
	}

	var ok bool
	if r.msg.version.HasPacketOutInPort() {
		ok = r.msg.hasInPort
	} else {
		_, ok = r.msg.match.InPort()
	}
	if !ok {
		return PacketOut{}, errors.Wrapf(ErrMissingInPort, "PACKET_OUT on %v", r.msg.version)
	}
	if r.msg.bufferID == NoBuffer && len(r.msg.data) == 0 {
		return PacketOut{}, errors.Wrapf(ErrEmptyPayload, "PACKET_OUT on %v", r.msg.version)
	}

	return r.msg, nil
}

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
)

type MessageType uint8

const (
	TypeHello       MessageType = 0
	TypeError       MessageType = 1
	TypeEchoRequest MessageType = 2
	TypeEchoReply   MessageType = 3
	TypePacketIn    MessageType = 10
	TypePacketOut   MessageType = 13
)

func (r MessageType) String() string {
	switch r {
	case TypeHello:
		return "HELLO"
	case TypeError:
		return "ERROR"
	case TypeEchoRequest:
		return "ECHO_REQUEST"
	case TypeEchoReply:
		return "ECHO_REPLY"
	case TypePacketIn:
		return "PACKET_IN"
	case TypePacketOut:
		return "PACKET_OUT"
	default:
		return fmt.Sprintf("TYPE(%d)", uint8(r))
	}
}

type Header interface {
	Version() Version
	Type() MessageType
	TransactionID() uint32
}

// Message is an OpenFlow message value. Messages are immutable.
type Message interface {
	Header
	// WithTransactionID returns a copy of the message whose transaction ID is
	// xid. The receiver is left untouched.
	WithTransactionID(xid uint32) Message
}

// header is the common ofp_header embedded by all messages.
type header struct {
	version Version
	msgType MessageType
	xid     uint32
}

func newHeader(version Version, msgType MessageType, xid uint32) header {
	return header{
		version: version,
		msgType: msgType,
		xid:     xid,
	}
}

func (r header) Version() Version {
	return r.version
}

func (r header) Type() MessageType {
	return r.msgType
}

func (r header) TransactionID() uint32 {
	return r.xid
}

func (r header) String() string {
	return fmt.Sprintf("%v %v (xid=%v)", r.version, r.msgType, r.xid)
}

func copyBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}

	v := make([]byte, len(b))
	copy(v, b)

	return v
}

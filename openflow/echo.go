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

// Echo is an ECHO_REQUEST or ECHO_REPLY message carrying opaque data.
type Echo struct {
	header
	data []byte
}

func newEcho(version Version, msgType MessageType, xid uint32, data []byte) Echo {
	return Echo{
		header: newHeader(version, msgType, xid),
		data:   copyBytes(data),
	}
}

func (r Echo) Data() []byte {
	return copyBytes(r.data)
}

func (r Echo) WithTransactionID(xid uint32) Message {
	r.xid = xid
	return r
}

// Reply returns the ECHO_REPLY answering this request. The reply keeps the
// request's transaction ID and data.
func (r Echo) Reply() Echo {
	return newEcho(r.version, TypeEchoReply, r.xid, r.data)
}

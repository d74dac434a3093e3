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
	"sync/atomic"

	"github.com/pkg/errors"
)

// Factory creates messages for a single protocol version. A switch session
// owns one factory for the version it negotiated.
type Factory interface {
	Version() Version
	NewEchoRequest(data []byte) Echo
	NewEchoReply(data []byte) Echo
	NewMatch() Match
	NewOutput(port Port, maxLen uint16) Output
	NewPacketIn() PacketInBuilder
	NewPacketOut() PacketOutBuilder
}

// Concrete factory
type factory struct {
	version Version
	xid     uint32
}

// NewFactory returns the message factory for version.
func NewFactory(version Version) (Factory, error) {
	if !version.Valid() {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "0x%02x", uint8(version))
	}

	return &factory{version: version}, nil
}

func (r *factory) getTransactionID() uint32 {
	// Transaction ID will be started from 1, not 0.
	return atomic.AddUint32(&r.xid, 1)
}

func (r *factory) Version() Version {
	return r.version
}

func (r *factory) NewEchoRequest(data []byte) Echo {
	return newEcho(r.version, TypeEchoRequest, r.getTransactionID(), data)
}

func (r *factory) NewEchoReply(data []byte) Echo {
	return newEcho(r.version, TypeEchoReply, r.getTransactionID(), data)
}

func (r *factory) NewMatch() Match {
	return NewMatch()
}

func (r *factory) NewOutput(port Port, maxLen uint16) Output {
	return NewOutput(port, maxLen)
}

func (r *factory) NewPacketIn() PacketInBuilder {
	return newPacketInBuilder(r.version, r.getTransactionID())
}

func (r *factory) NewPacketOut() PacketOutBuilder {
	return newPacketOutBuilder(r.version, r.getTransactionID())
}

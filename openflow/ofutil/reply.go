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

package ofutil

import (
	"github.com/superkkt/ofcompat/openflow"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var (
	logger = logging.MustGetLogger("ofutil")
)

// Switch is the connection to a switch that negotiated a protocol version.
type Switch interface {
	// Factory returns the message factory for the negotiated version.
	Factory() openflow.Factory
	Write(msg openflow.Message) error
}

// WritePacketOutForPacketIn sends the packet of pi out of egress on sw. The
// packet is referenced by its buffer ID when the switch buffered it, and
// attached to the PACKET_OUT otherwise.
func WritePacketOutForPacketIn(sw Switch, pi openflow.PacketIn, egress openflow.Port) error {
	f := sw.Factory()

	ingress, err := IngressPort(pi)
	if err != nil {
		return errors.Wrap(err, "reading PACKET_IN ingress port")
	}

	b := f.NewPacketOut().SetBufferID(pi.BufferID())
	b = SetIngressPort(b, ingress)
	b = b.SetActions(f.NewOutput(egress, openflow.NoTruncation))
	if pi.BufferID() == openflow.NoBuffer {
		b = b.SetData(pi.Data())
	}

	out, err := b.Build()
	if err != nil {
		return errors.Wrap(err, "building PACKET_OUT")
	}
	logger.Debugf("sending PACKET_OUT: %v", out)

	if err := sw.Write(out); err != nil {
		return errors.Wrapf(err, "writing PACKET_OUT (xid=%v)", out.TransactionID())
	}

	return nil
}

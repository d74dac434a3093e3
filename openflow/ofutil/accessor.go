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

	"github.com/pkg/errors"
)

// IngressPort returns the port on which the switch received the packet. The
// port is the inline in_port field before OF1.2 and the IN_PORT match field
// from OF1.2 on. A packet-in without the port is malformed and the returned
// error matches openflow.ErrMissingInPort.
func IngressPort(pi openflow.PacketIn) (openflow.Port, error) {
	var port openflow.Port
	var ok bool

	if pi.Version().HasPacketInInPort() {
		port, ok = pi.InPort()
	} else {
		port, ok = pi.Match().InPort()
	}
	if !ok {
		return 0, errors.Wrapf(openflow.ErrMissingInPort, "%v (xid=%v)", pi.Version(), pi.TransactionID())
	}

	return port, nil
}

// SetIngressPort returns a copy of b whose ingress port is port. Before OF1.5
// the inline in_port field is set. From OF1.5 on, IN_PORT is set on the
// builder's match (an empty one if the builder has none yet) and the updated
// match is installed on the returned builder.
func SetIngressPort(b openflow.PacketOutBuilder, port openflow.Port) openflow.PacketOutBuilder {
	if b.Version().HasPacketOutInPort() {
		return b.SetInPort(port)
	}

	match, ok := b.Match()
	if !ok {
		match = openflow.NewMatch()
	}

	return b.SetMatch(match.WithInPort(port))
}

// VLAN returns the VLAN on which the packet was received, or
// openflow.Untagged if the packet-in match has no VLAN_VID field.
func VLAN(pi openflow.PacketIn) openflow.VLANID {
	vlan, ok := pi.Match().VLANID()
	if !ok {
		return openflow.Untagged
	}

	return vlan
}

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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Port is a switch port number in the 32-bit space used since OF1.1. OF1.0
// ports are mapped in and out with PortFrom16 and To16.
type Port uint32

const (
	// Maximum number of physical and logical switch ports.
	PortMax Port = 0xffffff00
	// Send the packet out the input port.
	PortInPort Port = 0xfffffff8
	// Submit the packet to the first flow table.
	PortTable Port = 0xfffffff9
	// Forward using non-OpenFlow pipeline.
	PortNormal Port = 0xfffffffa
	// Flood using non-OpenFlow pipeline.
	PortFlood Port = 0xfffffffb
	// All standard ports except input port.
	PortAll        Port = 0xfffffffc
	PortController Port = 0xfffffffd
	PortLocal      Port = 0xfffffffe
	// Wildcard port used only for flow mod (delete) and flow stats requests.
	PortAny Port = 0xffffffff
)

const (
	of10PortMax Port = 0xff00
	// OF1.0 reserved ports live in 0xfff8-0xffff, the 32-bit ones in
	// 0xfffffff8-0xffffffff. The low byte is the same.
	of10ReservedBase   = 0xfff8
	reservedPortOffset = 0xffff0000
)

// PortFrom16 converts an OF1.0 port number into the 32-bit space.
func PortFrom16(port uint16) Port {
	if port >= of10ReservedBase {
		return Port(port) + reservedPortOffset
	}

	return Port(port)
}

// To16 converts the port number into the OF1.0 16-bit space.
func (r Port) To16() (uint16, error) {
	if r.IsReserved() {
		return uint16(r - reservedPortOffset), nil
	}
	if r > of10PortMax {
		return 0, errors.Wrapf(ErrInvalidPort, "%v does not fit in an OF1.0 port", uint32(r))
	}

	return uint16(r), nil
}

var reservedPortNames = map[string]Port{
	"in_port":    PortInPort,
	"table":      PortTable,
	"normal":     PortNormal,
	"flood":      PortFlood,
	"all":        PortAll,
	"controller": PortController,
	"local":      PortLocal,
	"any":        PortAny,
}

// ParsePort accepts a port number or the name of a reserved port such as
// "flood" or "controller".
func ParsePort(s string) (Port, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if p, ok := reservedPortNames[s]; ok {
		return p, nil
	}

	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidPort, "%q", s)
	}
	p := Port(v)
	if p == 0 || (p > PortMax && !p.IsReserved()) {
		return 0, errors.Wrapf(ErrInvalidPort, "%q", s)
	}

	return p, nil
}

// IsReserved reports whether the port is one of the reserved (virtual) ports.
func (r Port) IsReserved() bool {
	return r >= PortInPort
}

func (r Port) String() string {
	switch r {
	case PortInPort:
		return "IN_PORT"
	case PortTable:
		return "TABLE"
	case PortNormal:
		return "NORMAL"
	case PortFlood:
		return "FLOOD"
	case PortAll:
		return "ALL"
	case PortController:
		return "CONTROLLER"
	case PortLocal:
		return "LOCAL"
	case PortAny:
		return "ANY"
	default:
		return fmt.Sprintf("%d", uint32(r))
	}
}

// BufferID references a packet buffered on the switch.
type BufferID uint32

// NoBuffer means the switch did not buffer the packet, so the packet data has
// to travel with the message.
const NoBuffer BufferID = 0xffffffff

func (r BufferID) String() string {
	if r == NoBuffer {
		return "NO_BUFFER"
	}

	return fmt.Sprintf("%d", uint32(r))
}

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

// Version is an OpenFlow wire protocol version. Versions are totally ordered
// by their wire values.
type Version uint8

const (
	OF10 Version = 0x01
	OF11 Version = 0x02
	OF12 Version = 0x03
	OF13 Version = 0x04
	OF14 Version = 0x05
	OF15 Version = 0x06
)

// OF1.2 moved the ingress port of PACKET_IN into the OXM match, and OF1.5 did
// the same for PACKET_OUT.
const (
	packetInMatchVersion  = OF12
	packetOutMatchVersion = OF15
)

var versionNames = map[Version]string{
	OF10: "1.0",
	OF11: "1.1",
	OF12: "1.2",
	OF13: "1.3",
	OF14: "1.4",
	OF15: "1.5",
}

// ParseVersion accepts "1.3", "OF1.3", "of13" and "OpenFlow13" styles.
func ParseVersion(s string) (Version, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "openflow")
	v = strings.TrimPrefix(v, "of")
	v = strings.TrimSpace(v)
	if len(v) == 2 && !strings.Contains(v, ".") {
		v = v[:1] + "." + v[1:]
	}

	for ver, name := range versionNames {
		if name == v {
			return ver, nil
		}
	}

	return 0, errors.Wrapf(ErrUnsupportedVersion, "%q", s)
}

// Valid reports whether v is a version this package knows about.
func (v Version) Valid() bool {
	_, ok := versionNames[v]
	return ok
}

func (v Version) String() string {
	name, ok := versionNames[v]
	if !ok {
		return fmt.Sprintf("OF(0x%02x)", uint8(v))
	}

	return "OF" + name
}

// The capability checks below are one-sided comparisons: a version newer than
// any known one behaves like the newest known version.

// HasPacketInInPort reports whether PACKET_IN carries an inline in_port field.
func (v Version) HasPacketInInPort() bool {
	return v < packetInMatchVersion
}

// HasPacketInMatch reports whether PACKET_IN carries a match structure.
func (v Version) HasPacketInMatch() bool {
	return !v.HasPacketInInPort()
}

// HasPacketOutInPort reports whether PACKET_OUT carries an inline in_port field.
func (v Version) HasPacketOutInPort() bool {
	return v < packetOutMatchVersion
}

// HasPacketOutMatch reports whether PACKET_OUT carries a match structure.
func (v Version) HasPacketOutMatch() bool {
	return !v.HasPacketOutInPort()
}

// Has32BitPort reports whether port numbers are 32 bits wide on the wire.
func (v Version) Has32BitPort() bool {
	return v > OF10
}

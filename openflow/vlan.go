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

// VLANID is a VLAN_VID match value in OXM encoding: the 12-bit VLAN ID plus
// the OFPVID_PRESENT bit.
type VLANID uint16

const (
	// Untagged matches packets without a VLAN tag (OFPVID_NONE).
	Untagged VLANID = 0x0000
	// VLANPresent is set on every tagged VLAN_VID value (OFPVID_PRESENT).
	VLANPresent VLANID = 0x1000

	maxVID = 0x0fff
)

// NewVLANID returns the tagged value for vid.
func NewVLANID(vid uint16) (VLANID, error) {
	if vid > maxVID {
		return Untagged, errors.Wrapf(ErrInvalidVLANID, "%v", vid)
	}

	return VLANID(vid) | VLANPresent, nil
}

// VID returns the 12-bit VLAN ID.
func (r VLANID) VID() uint16 {
	return uint16(r) & maxVID
}

func (r VLANID) Tagged() bool {
	return r&VLANPresent != 0
}

func (r VLANID) String() string {
	if !r.Tagged() {
		return "UNTAGGED"
	}

	return fmt.Sprintf("%d", r.VID())
}

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
	"github.com/pkg/errors"
)

var (
	ErrUnsupportedVersion = errors.New("unsupported protocol version")
	ErrUnsupportedField   = errors.New("field is not supported by this protocol version")
	ErrMissingInPort      = errors.New("missing ingress port")
	ErrEmptyPayload       = errors.New("empty payload on an unbuffered packet")
	ErrInvalidPort        = errors.New("invalid port number")
	ErrInvalidMACAddress  = errors.New("invalid MAC address")
	ErrInvalidVLANID      = errors.New("invalid VLAN ID")
)

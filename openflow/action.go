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

type ActionType uint16

const (
	ActionOutput ActionType = 0
)

// NoTruncation asks the switch not to cut the packet sent to the controller
// (OFPCML_NO_BUFFER).
const NoTruncation uint16 = 0xffff

type Action interface {
	ActionType() ActionType
	String() string
}

// Output forwards the packet to Port. MaxLen is only meaningful when Port is
// PortController.
type Output struct {
	Port   Port
	MaxLen uint16
}

func NewOutput(port Port, maxLen uint16) Output {
	return Output{
		Port:   port,
		MaxLen: maxLen,
	}
}

func (r Output) ActionType() ActionType {
	return ActionOutput
}

func (r Output) String() string {
	if r.MaxLen == NoTruncation {
		return fmt.Sprintf("output:%v", r.Port)
	}

	return fmt.Sprintf("output:%v(max_len=%v)", r.Port, r.MaxLen)
}

func copyActions(actions []Action) []Action {
	if len(actions) == 0 {
		return nil
	}

	v := make([]Action, len(actions))
	copy(v, actions)

	return v
}

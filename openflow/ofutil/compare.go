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
	"reflect"

	"github.com/superkkt/ofcompat/openflow"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var equalOptions = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateEmpty(),
}

// EqualIgnoringTransactionID reports whether a and b are deeply equal except
// for their transaction IDs.
//
// NOTE: This allocates a copy of b for every call. Use it in tests, not on
// the packet path.
func EqualIgnoringTransactionID(a, b openflow.Message) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return cmp.Equal(a, b.WithTransactionID(a.TransactionID()), equalOptions...)
}

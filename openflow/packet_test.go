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
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func newTestFactory(t *testing.T, v Version) Factory {
	f, err := NewFactory(v)
	if err != nil {
		t.Fatalf("failed to create a factory for %v: %v", v, err)
	}

	return f
}

func TestPacketInLegacyVersions(t *testing.T) {
	for _, v := range []Version{OF10, OF11} {
		f := newTestFactory(t, v)

		pi, err := f.NewPacketIn().SetBufferID(5).SetInPort(3).SetData([]byte{1, 2, 3}).Build()
		if err != nil {
			t.Fatalf("%v: failed to build PACKET_IN: %v", v, err)
		}
		if port, ok := pi.InPort(); !ok || port != 3 {
			t.Fatalf("%v: unexpected in_port: port=%v, ok=%v", v, port, ok)
		}
		if pi.Match().Len() != 0 {
			t.Fatalf("%v: legacy PACKET_IN should not have a match: %v", v, pi.Match())
		}
		if pi.BufferID() != 5 || pi.TotalLength() != 3 {
			t.Fatalf("%v: unexpected PACKET_IN: %v", v, spew.Sdump(pi))
		}

		_, err = f.NewPacketIn().SetInPort(3).SetMatch(NewMatch().WithInPort(3)).Build()
		if !errors.Is(err, ErrUnsupportedField) {
			t.Fatalf("%v: expected ErrUnsupportedField for a match, got %v", v, err)
		}
		if _, err := f.NewPacketIn().Build(); !errors.Is(err, ErrMissingInPort) {
			t.Fatalf("%v: expected ErrMissingInPort, got %v", v, err)
		}
	}

	// OF1.0 ports are 16 bits wide.
	f := newTestFactory(t, OF10)
	if _, err := f.NewPacketIn().SetInPort(0x10000).Build(); !errors.Is(err, ErrInvalidPort) {
		t.Fatalf("expected ErrInvalidPort, got %v", err)
	}
}

func TestPacketInMatchVersions(t *testing.T) {
	for _, v := range []Version{OF12, OF13, OF14, OF15} {
		f := newTestFactory(t, v)

		pi, err := f.NewPacketIn().SetMatch(NewMatch().WithInPort(7)).SetReason(1).SetTableID(2).SetCookie(0xdead).Build()
		if err != nil {
			t.Fatalf("%v: failed to build PACKET_IN: %v", v, err)
		}
		if _, ok := pi.InPort(); ok {
			t.Fatalf("%v: PACKET_IN should not have an inline in_port", v)
		}
		if port, ok := pi.Match().InPort(); !ok || port != 7 {
			t.Fatalf("%v: unexpected match in_port: port=%v, ok=%v", v, port, ok)
		}
		if pi.Reason() != 1 || pi.TableID() != 2 || pi.Cookie() != 0xdead {
			t.Fatalf("%v: unexpected PACKET_IN: %v", v, spew.Sdump(pi))
		}
		if pi.BufferID() != NoBuffer {
			t.Fatalf("%v: default buffer ID should be NO_BUFFER, got %v", v, pi.BufferID())
		}

		if _, err := f.NewPacketIn().SetInPort(7).Build(); !errors.Is(err, ErrUnsupportedField) {
			t.Fatalf("%v: expected ErrUnsupportedField for an inline in_port, got %v", v, err)
		}
	}
}

func TestPacketOutBuilder(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef}

	for _, v := range []Version{OF10, OF13, OF14} {
		f := newTestFactory(t, v)
		b := f.NewPacketOut().SetInPort(3).SetActions(NewOutput(7, NoTruncation)).SetData(data)
		out, err := b.Build()
		if err != nil {
			t.Fatalf("%v: failed to build PACKET_OUT: %v", v, err)
		}
		if port, ok := out.InPort(); !ok || port != 3 {
			t.Fatalf("%v: unexpected in_port: port=%v, ok=%v", v, port, ok)
		}
		if _, ok := out.Match(); ok {
			t.Fatalf("%v: PACKET_OUT should not have a match", v)
		}
		if !bytes.Equal(out.Data(), data) {
			t.Fatalf("%v: unexpected data: %v", v, out.Data())
		}
		if _, err := b.SetMatch(NewMatch()).Build(); !errors.Is(err, ErrUnsupportedField) {
			t.Fatalf("%v: expected ErrUnsupportedField for a match, got %v", v, err)
		}
	}

	f := newTestFactory(t, OF15)
	if _, err := f.NewPacketOut().SetInPort(3).SetData(data).Build(); !errors.Is(err, ErrUnsupportedField) {
		t.Fatalf("OF1.5: expected ErrUnsupportedField for an inline in_port, got %v", err)
	}
	if _, err := f.NewPacketOut().SetMatch(NewMatch()).SetData(data).Build(); !errors.Is(err, ErrMissingInPort) {
		t.Fatalf("OF1.5: expected ErrMissingInPort, got %v", err)
	}
	out, err := f.NewPacketOut().SetMatch(NewMatch().WithInPort(3)).SetData(data).Build()
	if err != nil {
		t.Fatalf("OF1.5: failed to build PACKET_OUT: %v", err)
	}
	if _, ok := out.InPort(); ok {
		t.Fatal("OF1.5: PACKET_OUT should not have an inline in_port")
	}
	if m, ok := out.Match(); !ok || !m.Equal(NewMatch().WithInPort(3)) {
		t.Fatalf("OF1.5: unexpected match: %v", m)
	}
}

func TestPacketOutPayloadInvariant(t *testing.T) {
	f := newTestFactory(t, OF13)

	if _, err := f.NewPacketOut().SetInPort(1).Build(); !errors.Is(err, ErrEmptyPayload) {
		t.Fatalf("expected ErrEmptyPayload, got %v", err)
	}
	if _, err := f.NewPacketOut().SetBufferID(9).SetInPort(1).Build(); err != nil {
		t.Fatalf("buffered PACKET_OUT without data should be valid: %v", err)
	}
}

func TestBuilderIsValue(t *testing.T) {
	f := newTestFactory(t, OF13)
	data := []byte{1, 2, 3, 4}

	base := f.NewPacketOut().SetInPort(1).SetData(data)
	other := base.SetInPort(2).SetActions(NewOutput(PortFlood, NoTruncation))

	// Neither the caller's slice nor the first builder can be changed behind
	// our back.
	data[0] = 0xff
	if port, _ := base.InPort(); port != 1 {
		t.Fatalf("base builder is modified: in_port=%v", port)
	}
	if len(base.Actions()) != 0 {
		t.Fatalf("base builder is modified: actions=%v", base.Actions())
	}
	if base.Data()[0] != 1 {
		t.Fatalf("builder shares the caller's slice: %v", base.Data())
	}

	out, err := other.Build()
	if err != nil {
		t.Fatalf("failed to build PACKET_OUT: %v", err)
	}
	out.Data()[0] = 0xff
	out.Actions()[0] = NewOutput(1, 0)
	if out.Data()[0] != 1 {
		t.Fatalf("PACKET_OUT data is mutable through its getter: %v", out.Data())
	}
	if out.Actions()[0] != Action(NewOutput(PortFlood, NoTruncation)) {
		t.Fatalf("PACKET_OUT actions are mutable through its getter: %v", out.Actions())
	}
}

func TestWithTransactionID(t *testing.T) {
	f := newTestFactory(t, OF13)
	pi, err := f.NewPacketIn().SetMatch(NewMatch().WithInPort(1)).Build()
	if err != nil {
		t.Fatalf("failed to build PACKET_IN: %v", err)
	}

	xid := pi.TransactionID()
	copied := pi.WithTransactionID(xid + 100)
	if pi.TransactionID() != xid {
		t.Fatalf("receiver is modified: xid=%v", pi.TransactionID())
	}
	if copied.TransactionID() != xid+100 {
		t.Fatalf("unexpected xid: %v", copied.TransactionID())
	}
	if _, ok := copied.(PacketIn); !ok {
		t.Fatalf("unexpected message type: %T", copied)
	}
}

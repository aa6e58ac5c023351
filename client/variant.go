// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package client

import "github.com/exoline-go/exoline/controller"

// Variant is a typed value read from, or to be written to, a device.
// Exactly one field is meaningful, selected by Kind.
type Variant struct {
	kind  controller.VariableKind
	huge  int32
	index byte
	integ int16
	logic bool
	real  float32
	str   string
}

// Kind reports which accessor is meaningful.
func (v Variant) Kind() controller.VariableKind { return v.kind }

// HugeValue constructs a Huge variant.
func HugeValue(v int32) Variant { return Variant{kind: controller.Huge, huge: v} }

// IndexValue constructs an Index variant.
func IndexValue(v byte) Variant { return Variant{kind: controller.Index, index: v} }

// IntegerValue constructs an Integer variant.
func IntegerValue(v int16) Variant { return Variant{kind: controller.Integer, integ: v} }

// LogicValue constructs a Logic variant.
func LogicValue(v bool) Variant { return Variant{kind: controller.Logic, logic: v} }

// RealValue constructs a Real variant.
func RealValue(v float32) Variant { return Variant{kind: controller.Real, real: v} }

// StringValue constructs a String variant.
func StringValue(v string) Variant { return Variant{kind: controller.String, str: v} }

// Huge returns the Huge value and whether this variant holds one.
func (v Variant) Huge() (int32, bool) { return v.huge, v.kind == controller.Huge }

// Index returns the Index value and whether this variant holds one.
func (v Variant) Index() (byte, bool) { return v.index, v.kind == controller.Index }

// Integer returns the Integer value and whether this variant holds one.
func (v Variant) Integer() (int16, bool) { return v.integ, v.kind == controller.Integer }

// Logic returns the Logic value and whether this variant holds one.
func (v Variant) Logic() (bool, bool) { return v.logic, v.kind == controller.Logic }

// Real returns the Real value and whether this variant holds one.
func (v Variant) Real() (float32, bool) { return v.real, v.kind == controller.Real }

// String returns the String value and whether this variant holds one.
func (v Variant) String() (string, bool) { return v.str, v.kind == controller.String }

/*
Package enbeet reads and writes NBT (Named Binary Tag) documents.

NBT is a compact binary format for trees of tagged values: compounds
holding named entries, homogeneous lists, fixed width numbers, strings
and arrays of numbers. Documents are usually gzipped.

# Data model

The types package holds the in-memory tree. A types.Compound maps keys
to values and keeps them in insertion order. A types.List holds values
of a single kind, declared when the list is created and enforced on
every insertion. Scalars and arrays are plain Go types wrapped in value
types such as types.IntValue or types.ByteArrayValue.

Values nested in compounds are addressed by paths:

	c := types.NewCompound()
	err := c.Set(types.NewIntValue(42), "Level", "xPos")
	x, ok := c.GetInt("Level", "xPos")

Typed getters return false when the stored value is of another kind,
this is never an error.

# Encoding

The codec package implements the binary format. The decoder detects
gzip, zlib, zstd and LZ4 framings from the first bytes of the stream,
the encoder writes gzip unless told otherwise. This package provides
shortcuts for the common cases:

	c, err := enbeet.ReadFile("level.dat")
	...
	err = enbeet.WriteFile("level.dat", c)

# Storage

The store package persists compounds in a pebble database, keyed by
string.
*/
package enbeet

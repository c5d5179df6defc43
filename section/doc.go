// Package section defines the positional layout of an item token.
//
// A token is a string of ASCII decimal digits with no separators. Field
// boundaries are implied by a width table (see package width); this package
// holds the layout constants and the plain value types the decoder fills in.
//
// # Token Layout
//
// With the default width table:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│ Header (11 digits)                                           │
//	│  - Magic (4): version marker, must be 1003                   │
//	│  - Item  (5): item id                                        │
//	│  - Type  (2): item type code                                 │
//	├──────────────────────────────────────────────────────────────┤
//	│ Attribute slots (8 × variable)                               │
//	│  - Class (1): width class digit, 0 = empty slot              │
//	│  - Type  (3): attribute type id, 999 = sentinel              │
//	│  - Value (w): w = table.ValueWidth(mode, class)              │
//	├──────────────────────────────────────────────────────────────┤
//	│ Trailer (0..n digits, opaque)                                │
//	└──────────────────────────────────────────────────────────────┘
//
// Example, the token of item 1:
//
//	1003 00001 01 | 2 001 015 | 2 002 003 | 2 003 000 | 0 000 000 ×5 | 00000000086
//	magic item ty   slot 0      slot 1      slot 2      slots 3..7     trailer
//
// # Attribute Count
//
// The attribute count is not a header field: it is the number of leading
// slots with a non-zero class digit. After the first empty slot all remaining
// slots must be empty and all-zero. A non-zero class digit right after the
// eighth slot declares a ninth attribute, which is rejected.
//
// # Sentinel Regime
//
// A slot whose type id equals SentinelTypeID switches the decoder from the
// standard regime into the extended regime. The switch is sticky: the current
// slot and every following slot take their value widths from the extended
// class table. The sentinel type id is stored verbatim.
package section
